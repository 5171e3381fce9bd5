package api

import (
	"embed"

	"github.com/dmitrymomot/jobboard/pkg/schema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Request body schema ids.
const (
	JobNewSchema        = "https://jobboard.dev/schemas/jobNew.json"
	JobUpdateSchema     = "https://jobboard.dev/schemas/jobUpdate.json"
	CompanyNewSchema    = "https://jobboard.dev/schemas/companyNew.json"
	CompanyUpdateSchema = "https://jobboard.dev/schemas/companyUpdate.json"
	UserNewSchema       = "https://jobboard.dev/schemas/userNew.json"
	UserRegisterSchema  = "https://jobboard.dev/schemas/userRegister.json"
	UserUpdateSchema    = "https://jobboard.dev/schemas/userUpdate.json"
	UserAuthSchema      = "https://jobboard.dev/schemas/userAuth.json"
)

// NewSchemaValidator compiles the embedded request body schemas.
func NewSchemaValidator() (*schema.Validator, error) {
	return schema.NewValidatorFromFS(schemaFS, "schemas")
}
