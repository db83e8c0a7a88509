package models

// Book is the sole persisted entity of the service. A book is identified by
// its ISBN-13; every other field is mutable through an update request.
//
// JSON field names follow the public wire shape of the API. Input documents
// are matched case-insensitively by encoding/json, so clients may send
// "Isbn" or "isbn" interchangeably.
type Book struct {
	ISBN             string `json:"isbn"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Author           string `json:"author"`
	PageCount        int    `json:"pageCount"`
	ReleaseDate      Date   `json:"releaseDate"`
}
