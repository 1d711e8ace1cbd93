package reqres

type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

type Resource struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	PantoneValue string `json:"pantone_value"`
}

type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Page is the envelope of every list endpoint.
type Page[T any] struct {
	Page       int      `json:"page"`
	PerPage    int      `json:"per_page"`
	Total      int      `json:"total"`
	TotalPages int      `json:"total_pages"`
	Data       []T      `json:"data"`
	Support    *Support `json:"support,omitempty"`
}

// Single is the envelope of every single-item endpoint.
type Single[T any] struct {
	Data    T        `json:"data"`
	Support *Support `json:"support,omitempty"`
}

type (
	UserPage       = Page[User]
	ResourcePage   = Page[Resource]
	SingleUser     = Single[User]
	SingleResource = Single[Resource]
)

type UpdateUserRequest struct {
	Name string `json:"name,omitempty"`
	Job  string `json:"job"`
}

type UpdatedUser struct {
	Name      string `json:"name,omitempty"`
	Job       string `json:"job"`
	UpdatedAt string `json:"updatedAt"`
}

type CreateUserRequest struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type CreatedUser struct {
	Name      string `json:"name"`
	Job       string `json:"job"`
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RegisterResponse struct {
	ID    int    `json:"id"`
	Token string `json:"token"`
}

// ErrorBody is what the API returns alongside 4xx statuses.
type ErrorBody struct {
	Error string `json:"error"`
}
