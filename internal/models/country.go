package models

// Country is a lookup row used for both addresses and nationalities.
type Country struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
