// Package vector provides a growable float32 vector and a dictionary of
// vectors.
//
// # Vectors
//
// A Vector is either Dynamic (owns its buffer, grows on demand) or Static
// (a view over caller storage with a fixed capacity).
//
//	v, err := vector.New(8)
//	if err != nil {
//		return err
//	}
//	defer v.Close()
//
//	_ = v.Append(3)
//	_ = v.Append(1)
//	_ = v.Sort(vector.Ascending)
//
// Dynamic vectors double their capacity while it is below 1<<20 elements and
// grow by 1<<20 elements after that.
//
// # Ownership
//
// Dict.Insert adopts a vector: the caller's handle becomes moved-from and
// every operation on it fails with floatc.ErrInvalidArgument. Vectors obtained
// from a Dict are borrowed and are released by the dictionary.
//
//	d, _ := vector.NewDict()
//	defer d.Close()
//
//	_ = d.Insert("temps", v) // v is now moved-from
//	temps, _ := d.Get("temps")
//	_ = temps.Append(21.5)
package vector
