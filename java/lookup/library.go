package lookup

import "github.com/dhamidi/doccheck/java/binding"

// declareLibrary adds the platform types doc comments commonly refer to.
// Units may reference any other qualified type; it is declared as an
// external class when the unit is built.
func declareLibrary(t *binding.Table) {
	iface := func(name string, supers ...*binding.Type) *binding.Type {
		typ := t.Interface(name, supers...)
		typ.Visibility = binding.VisibilityPublic
		return typ
	}
	class := func(name string, super *binding.Type, ifaces ...*binding.Type) *binding.Type {
		typ := t.Class(name, super, ifaces...)
		typ.Visibility = binding.VisibilityPublic
		return typ
	}

	charSequence := iface("java.lang.CharSequence")
	comparable := iface("java.lang.Comparable")
	iterable := iface("java.lang.Iterable")
	iface("java.lang.Runnable")
	iface("java.lang.AutoCloseable")
	t.String.Interfaces = append(t.String.Interfaces, charSequence, comparable)

	number := class("java.lang.Number", nil)
	for _, name := range []string{"Integer", "Long", "Short", "Byte", "Double", "Float"} {
		class("java.lang."+name, number, comparable)
	}
	class("java.lang.Boolean", nil, comparable)
	class("java.lang.Character", nil, comparable)
	class("java.lang.Class", nil)
	class("java.lang.Enum", nil, comparable)

	collection := iface("java.util.Collection", iterable)
	iface("java.util.List", collection)
	iface("java.util.Set", collection)
	iface("java.util.Map")
	iface("java.util.Iterator")

	for _, name := range []string{
		"IllegalArgumentException",
		"IllegalStateException",
		"NullPointerException",
		"UnsupportedOperationException",
		"ClassCastException",
		"ArithmeticException",
	} {
		class("java.lang."+name, t.RuntimeException)
	}
	class("java.lang.IndexOutOfBoundsException", t.RuntimeException)
	class("java.lang.CloneNotSupportedException", t.Exception)
	class("java.lang.InterruptedException", t.Exception)
	class("java.lang.ReflectiveOperationException", t.Exception)
	class("java.lang.AssertionError", t.Error)
	vmError := class("java.lang.VirtualMachineError", t.Error)
	class("java.lang.OutOfMemoryError", vmError)

	io := class("java.io.IOException", t.Exception)
	class("java.io.FileNotFoundException", io)
	class("java.io.UncheckedIOException", t.RuntimeException)
	iface("java.io.Closeable")
	iface("java.io.Serializable")
}
