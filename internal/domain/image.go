package domain

// Image is a hosted media asset. PublicID is the handle the media host needs
// to delete it again.
type Image struct {
	PublicID string `bson:"public_id" json:"public_id"`
	URL      string `bson:"url" json:"url"`
}
