package response

// Response messages and codes.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404
	TooManyRequestsCode     = 429
)
