package request

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"probuilder/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ProjectImageField = "project_image"
	formOverheadBytes = 1 << 20
)

// QuoteRequestForm is the public "Solicite um Orçamento" form. Presence of the
// fields is checked by the use case so that the page can answer with its own
// message instead of a binding error.
type QuoteRequestForm struct {
	ContactName  string `form:"contact_name"`
	ContactEmail string `form:"contact_email"`
	Service      string `form:"service"`
	Description  string `form:"description"`
}

func (f QuoteRequestForm) ToInput(image *usecase.ProjectImage) usecase.SubmitQuoteRequestInput {
	return usecase.SubmitQuoteRequestInput{
		ContactName:  f.ContactName,
		ContactEmail: f.ContactEmail,
		Service:      f.Service,
		Description:  f.Description,
		Image:        image,
	}
}

// AdminLoginForm is posted by the admin login page.
type AdminLoginForm struct {
	Password string `form:"password"`
}

// ReadProjectImage returns the optional uploaded project image, or nil when the
// form carries none. At most maxBytes+1 bytes are read, so an oversized file
// still reaches the use case, which decides whether it is stored or ignored.
func ReadProjectImage(c *gin.Context, maxBytes int64) (*usecase.ProjectImage, error) {
	fh, err := c.FormFile(ProjectImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("read project image: %w", err)
	}
	if fh.Size == 0 {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open project image: %w", err)
	}
	defer f.Close()

	r := io.Reader(f)
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read project image: %w", err)
	}
	return &usecase.ProjectImage{Filename: fh.Filename, Data: data}, nil
}

// BodyLimit is the largest public form body accepted: the image limit plus
// room for the text fields and multipart framing.
func BodyLimit(maxImageBytes int64) int64 {
	return maxImageBytes + formOverheadBytes
}

// IsBodyTooLarge reports whether err comes from a body cut by http.MaxBytesReader.
func IsBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
