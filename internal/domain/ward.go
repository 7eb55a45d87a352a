package domain

// Ward is a municipal administrative subdivision.
type Ward struct {
	ID          int64    `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Number      int      `json:"number" db:"number"`
	Area        *float64 `json:"area" db:"area"` // sq km
	Population  *int     `json:"population" db:"population"`
	Description *string  `json:"description" db:"description"`
}
