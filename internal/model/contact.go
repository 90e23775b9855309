package model

// ContactRecord holds the business-card fields of one account. Every field
// besides the email key is optional; nil means the column was never set and
// serializes as JSON null. Column names (hp, produc, cname, imgurl) follow
// the existing table schema.
type ContactRecord struct {
	Email   string  `json:"email"`
	Name    *string `json:"name"`
	HP      *string `json:"hp"`
	Address *string `json:"address"`
	Fax     *string `json:"fax"`
	URL     *string `json:"url"`
	Produc  *string `json:"produc"`
	Rank    *string `json:"rank"`
	CName   *string `json:"cname"`
	ImgURL  *string `json:"imgurl"`
}
