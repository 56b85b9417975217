package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"restock_service/internal/domain/entities"
)

var ErrSupplierEmailMissing = errors.New("supplier email missing")

const defaultStoreName = "Our store"

var supplierEmailTemplate = template.Must(template.New("supplier_email").Parse(
	`Hello {{.SupplierName}},

We would like to place the following restock order:

{{range .Items}}- {{.ProductName}}: {{.Quantity}}{{if .Notes}} ({{.Notes}}){{end}}
{{end}}
Please confirm availability and expected delivery date.

Thank you,
{{.StoreName}}
`))

type supplierEmailData struct {
	SupplierName string
	StoreName    string
	Items        []entities.SessionItem
}

// ComposeSupplierEmails builds one email per supplier of the session, in the
// order suppliers first appear among the items.
func ComposeSupplierEmails(s entities.Session, storeName string) ([]entities.SupplierEmail, error) {
	storeName = strings.TrimSpace(storeName)
	if storeName == "" {
		storeName = defaultStoreName
	}

	suppliers := s.UniqueSuppliers()
	out := make([]entities.SupplierEmail, 0, len(suppliers))
	for _, sup := range suppliers {
		to := strings.TrimSpace(sup.Email)
		if to == "" {
			return nil, fmt.Errorf("%w: supplier %s", ErrSupplierEmailMissing, sup.ID)
		}

		items := s.ItemsForSupplier(sup.ID)
		var body bytes.Buffer
		if err := supplierEmailTemplate.Execute(&body, supplierEmailData{
			SupplierName: sup.Name,
			StoreName:    storeName,
			Items:        items,
		}); err != nil {
			return nil, fmt.Errorf("render supplier email: %w", err)
		}

		out = append(out, entities.SupplierEmail{
			SessionID:    s.ID(),
			SupplierID:   sup.ID,
			SupplierName: sup.Name,
			To:           to,
			Subject:      "Restock request - " + s.Name(),
			Body:         body.String(),
			Items:        items,
		})
	}
	return out, nil
}
