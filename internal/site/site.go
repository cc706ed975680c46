package site

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"brekkie/internal/domain"
	"brekkie/internal/validation"
)

//go:embed templates/index.gohtml
var templateFS embed.FS

// Site renders the marketing page. The template is parsed once at
// startup and embedded so deployments ship a single binary.
type Site struct {
	page   *template.Template
	logger *zap.Logger
}

func New(logger *zap.Logger) (*Site, error) {
	funcs := template.FuncMap{
		"lower": strings.ToLower,
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
	}

	tmpl, err := template.New("index.gohtml").Funcs(funcs).ParseFS(templateFS, "templates/index.gohtml")
	if err != nil {
		return nil, err
	}
	return &Site{
		page:   tmpl,
		logger: logger,
	}, nil
}

type pageData struct {
	Products         []domain.Product
	BusinessTypes    []string
	Frequencies      []string
	ContactEmail     string
	ContactAddress   string
	ContactInstagram string
	PreorderMax      int
	WholesaleMax     int
	TomorrowDate     string
}

// Home handles GET /.
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Products:         domain.Products,
		BusinessTypes:    domain.BusinessTypes,
		Frequencies:      domain.Frequencies,
		ContactEmail:     domain.ContactEmail,
		ContactAddress:   domain.ContactAddress,
		ContactInstagram: domain.ContactInstagram,
		PreorderMax:      validation.PreorderMaxPerFlavor,
		WholesaleMax:     validation.WholesaleMaxPerFlavor,
		// Delivery has to land strictly after the submission day, so the
		// earliest selectable date is tomorrow.
		TomorrowDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
	}
}
