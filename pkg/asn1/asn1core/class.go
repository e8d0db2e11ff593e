package asn1core

import "fmt"

// Class is the two-bit class field at the top of an identifier octet.
type Class int

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

var classNames nameTable[Class]

func init() {
	for class, name := range []string{"Universal", "Application", "ContextSpecific", "Private"} {
		classNames.Add(name, Class(class))
	}
	classNames.AddAlias("ContextSpecific", "Context")
}

func (c Class) String() string {
	if name, err := classNames.Name(c); err == nil {
		return name
	}
	return fmt.Sprintf("class=%d", int(c))
}

// ParseClass accepts a class name in any case.
func ParseClass(name string) (Class, error) {
	return classNames.Value(name)
}
