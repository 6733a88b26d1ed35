package input

// PressEvent records one physical key-down, its optional logical action,
// and any characters the press typed. Key and Action are both optional:
// a text-input press may carry only characters, and a bound press may
// have its Action nulled by suppression before dispatch.
type PressEvent struct {
	Key    *Key
	Action *Action
	Chars  []rune
}

// ReleaseEvent records one physical key-up.
type ReleaseEvent struct {
	Key    *Key
	Action *Action
}
