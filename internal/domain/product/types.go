package product

type Kind string

const (
	KindStandard Kind = "standard"
	KindBundle   Kind = "bundle"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindStandard, KindBundle:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}
