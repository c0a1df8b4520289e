package storage

// Type selects the article source backing a deployment.
type Type string

const (
	PG    Type = "pg"
	ES    Type = "es"
	InMem Type = "inmem"
)

func (t Type) Valid() bool {
	return t == PG || t == ES || t == InMem
}
