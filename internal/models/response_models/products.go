package response_models

// Product is the admin picker's view of a catalog entry. ID is the local
// product id with the remote namespace prefix already stripped.
type Product struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Handle   string `json:"handle"`
	Status   string `json:"status"`
	ImageURL string `json:"imageUrl"`
}
