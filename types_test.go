package enumoid

import "fmt"

// Test domains shared by the package tests.

// Zero has no keys.
type Zero struct{}

var zeroDomain = NewDomain[uint8](0, func(uint8) Zero { return Zero{} })

func (Zero) EnumDomain() *Domain[Zero] { return zeroDomain }
func (Zero) IntoWord() uint            { return 0 }

// Three is the smallest interesting domain: A, B, C.
type Three uint8

const (
	A Three = iota
	B
	C
)

var threeDomain = NewDomain[uint8](3, func(w uint8) Three { return Three(w) })

func (Three) EnumDomain() *Domain[Three] { return threeDomain }
func (t Three) IntoWord() uint           { return uint(t) }

var threeNames = [...]string{"A", "B", "C"}

func (t Three) String() string {
	if int(t) < len(threeNames) {
		return threeNames[t]
	}
	return fmt.Sprintf("Three(%d)", uint8(t))
}

func (t Three) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Three) UnmarshalText(text []byte) error {
	for i, name := range threeNames {
		if name == string(text) {
			*t = Three(i)
			return nil
		}
	}
	return fmt.Errorf("unknown Three %q", text)
}

// WideThree has three keys but a 32-bit word.
type WideThree uint8

var wideThreeDomain = NewDomain[uint32](3, func(w uint32) WideThree { return WideThree(w) })

func (WideThree) EnumDomain() *Domain[WideThree] { return wideThreeDomain }
func (t WideThree) IntoWord() uint               { return uint(t) }

// Sixteen fills exactly two bytes of bitset.
type Sixteen uint16

var sixteenDomain = NewDomain[uint8](16, func(w uint8) Sixteen { return Sixteen(w) })

func (Sixteen) EnumDomain() *Domain[Sixteen] { return sixteenDomain }
func (s Sixteen) IntoWord() uint             { return uint(s) }

// Seventeen spills one bit into a third byte.
type Seventeen uint16

var seventeenDomain = NewDomain[uint8](17, func(w uint8) Seventeen { return Seventeen(w) })

func (Seventeen) EnumDomain() *Domain[Seventeen] { return seventeenDomain }
func (s Seventeen) IntoWord() uint               { return uint(s) }

// ThreeHundred needs a 16-bit word.
type ThreeHundred uint16

var threeHundredDomain = NewDomain[uint16](300, func(w uint16) ThreeHundred { return ThreeHundred(w) })

func (ThreeHundred) EnumDomain() *Domain[ThreeHundred] { return threeHundredDomain }
func (t ThreeHundred) IntoWord() uint                  { return uint(t) }

// Seven is the sum type X(Three) | Y | Z(Three).
type Seven struct {
	tag uint8
	sub Three
}

const (
	tagX = iota
	tagY
	tagZ
)

var sevenParts = NewCompound(SizeOf[Three](), 1, SizeOf[Three]())

var sevenDomain = NewDomain[uint8](sevenParts.Size(), func(w uint8) Seven {
	v, local := sevenParts.Locate(uint(w))
	if v == tagY {
		return Seven{tag: tagY}
	}
	return Seven{tag: uint8(v), sub: FromWord[Three](local)}
})

func X(t Three) Seven { return Seven{tag: tagX, sub: t} }
func Z(t Three) Seven { return Seven{tag: tagZ, sub: t} }

var Y = Seven{tag: tagY}

func (Seven) EnumDomain() *Domain[Seven] { return sevenDomain }

func (s Seven) IntoWord() uint {
	if s.tag == tagY {
		return sevenParts.Offset(tagY)
	}
	return sevenParts.Offset(int(s.tag)) + s.sub.IntoWord()
}

func (s Seven) String() string {
	switch s.tag {
	case tagX:
		return "X(" + s.sub.String() + ")"
	case tagZ:
		return "Z(" + s.sub.String() + ")"
	}
	return "Y"
}
