package model

// LabelEncoder maps labels to integer codes by fitted class order.
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

// NewLabelEncoder builds an encoder whose codes follow class order.
func NewLabelEncoder(classes ...string) *LabelEncoder {
	index := make(map[string]int, len(classes))
	for i, class := range classes {
		index[class] = i
	}
	return &LabelEncoder{classes: classes, index: index}
}

// Encode returns the code for a label, or UnknownLabelCode when the
// label was not among the fitted classes.
func (e *LabelEncoder) Encode(label string) int {
	if code, ok := e.index[label]; ok {
		return code
	}
	return UnknownLabelCode
}

// Classes returns the fitted classes in code order.
func (e *LabelEncoder) Classes() []string {
	return e.classes
}
