// Package invoice печатает счёт по оплаченному заказу.
package invoice

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	"github.com/vladislavdragonenkov/lotcheckout/internal/money"
)

// ErrNotPaid: счёт выставляется только по оплаченному заказу.
var ErrNotPaid = errors.New("invoice requires a paid order")

// Customer — реквизиты покупателя в шапке счёта.
type Customer struct {
	ID   string
	Name string
}

type line struct {
	Product string
	Qty     int32
	Price   string
	Total   string
}

type view struct {
	OrderID  string
	Date     string
	Time     string
	Customer Customer
	Method   string
	Lines    []line
	Total    string
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`INVOICE {{.OrderID}}
Date: {{.Date}}
Time: {{.Time}}
Customer: {{if .Customer.Name}}{{.Customer.Name}} ({{.Customer.ID}}){{else}}{{.Customer.ID}}{{end}}
Payment method: {{.Method}}

{{range .Lines}}{{printf "%-24s %6d x %10s = %12s" .Product .Qty .Price .Total}}
{{end}}
TOTAL: {{.Total}}
`))

// Render печатает счёт: номер заказа, дата и время выставления, покупатель,
// метод оплаты, строки и итог.
func Render(order domain.Order, customer Customer) (string, error) {
	if !order.IsPaid() {
		return "", ErrNotPaid
	}
	if customer.ID == "" {
		customer.ID = order.UserID
	}

	billed := order.BilledAt.UTC()
	v := view{
		OrderID:  order.ID,
		Date:     billed.Format(time.DateOnly),
		Time:     billed.Format(time.TimeOnly),
		Customer: customer,
		Method:   string(order.PaymentMethod),
		Lines:    make([]line, 0, len(order.Items)),
		Total:    money.Format(order.TotalMinor),
	}
	for _, item := range order.Items {
		v.Lines = append(v.Lines, line{
			Product: item.ProductName,
			Qty:     item.Qty,
			Price:   money.Format(item.PriceMinor),
			Total:   money.LineTotal(item.Qty, item.PriceMinor).StringFixed(money.Scale),
		})
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("render invoice %s: %w", order.ID, err)
	}
	return buf.String(), nil
}

// Writer сохраняет счета в каталог, по файлу на заказ.
type Writer struct {
	dir string
}

// NewWriter создаёт каталог при необходимости.
func NewWriter(dir string) (*Writer, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("invoice directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create invoice dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Write рендерит счёт и атомарно кладёт его в <dir>/<orderID>.txt.
// Повторная запись того же заказа перезаписывает файл тем же содержимым.
func (w *Writer) Write(order domain.Order, customer Customer) (string, error) {
	body, err := Render(order, customer)
	if err != nil {
		return "", err
	}

	name := filepath.Base(order.ID)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: invalid order id %q", domain.ErrValidation, order.ID)
	}
	path := filepath.Join(w.dir, name+".txt")

	tmp, err := os.CreateTemp(w.dir, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp invoice: %w", err)
	}
	if _, err := tmp.WriteString(body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("write invoice: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("close invoice: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("rename invoice: %w", err)
	}
	return path, nil
}
