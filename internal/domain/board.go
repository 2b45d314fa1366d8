package domain

type Board struct {
	Id           BoardId
	Name         BoardName
	Introduction string
}

// BoardUpdate carries a partial board edit. Nil fields are left untouched.
type BoardUpdate struct {
	Name         *string
	Introduction *string
}
