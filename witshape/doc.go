// Package witshape classifies WIT types into marshalling shapes.
//
// The classifier decides, per WIT type, which marshaller type handles the
// value and which capabilities that marshaller declares:
//
//	WIT type        Marshaller              Capabilities
//	────────────────────────────────────────────────────────────────────
//	bool..f64,char  <Kind>Marshaller        to_native|to_managed
//	enum, flags     <Name>Marshaller        to_native|to_managed
//	string          Utf8Marshaller          to_native|to_managed|free|
//	                                        caller_allocated_buffer
//	list<T>         SliceMarshaller         to_native|to_managed|free|
//	                                        pinnable_reference  (+ element
//	                                        classification of T)
//	own<R>          <Name>OwnMarshaller     to_native|to_managed|
//	                                        guaranteed_unmarshal
//	borrow<R>       <Name>BorrowMarshaller  to_native|on_invoked
//	record etc.     <Name>Marshaller        to_native|to_managed|free
//
// Owned handles declare guaranteed_unmarshal so the handle is recovered on
// every exit path and never leaks; borrowed handles only notify after a
// successful call so the lease can be returned.
//
// Parse turns WIT-ish type strings ("u32", "list<string>", "own<file>")
// into wit.Type values, and BuildChain assembles the validated strategy
// chain for a classified layout.
package witshape
