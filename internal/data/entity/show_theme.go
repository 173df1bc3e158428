package entity

// ShowTheme is a topic an astronomy show can belong to
type ShowTheme struct {
	Base
	Name string `db:"name"`
}

func (t ShowTheme) String() string {
	return t.Name
}
