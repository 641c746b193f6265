package domain

// User is the local projection of an account owned by the user service,
// keyed by its external id.
type User struct {
	ID       string `bson:"_id"`
	UserName string `bson:"user_name"`
}
