// seed carga el catálogo de ítems desde un CSV (item_name,rate) usando la API.
//
// Uso: go run ./cmd/seed -file items.csv [-api http://localhost:8080] [-header] [-latin1]
// Los archivos exportados desde hojas de cálculo antiguas suelen venir en ISO-8859-1; -latin1 los convierte a UTF-8.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/billing-api/pkg/client"
)

type catalogRow struct {
	line int
	name string
	rate decimal.Decimal
}

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "URL base de la API")
	file := flag.String("file", "items.csv", "CSV con columnas item_name,rate")
	header := flag.Bool("header", false, "la primera fila es encabezado")
	latin1 := flag.Bool("latin1", false, "el archivo está en ISO-8859-1")
	flag.Parse()

	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := parseCatalog(f, *header, *latin1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	api := client.New(*apiURL)
	failed := 0
	for _, r := range rows {
		out, err := api.CreateItem(ctx, r.name, r.rate)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "línea %d (%s): %v\n", r.line, r.name, err)
			continue
		}
		fmt.Printf("ítem %d %s = %s\n", out.ItemID, r.name, r.rate.String())
	}

	fmt.Printf("%d ítems cargados, %d con error\n", len(rows)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// parseCatalog lee filas item_name,rate. Filas vacías se ignoran; una tarifa inválida corta la lectura.
func parseCatalog(r io.Reader, hasHeader, latin1 bool) ([]catalogRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []catalogRow
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && hasHeader {
			continue
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperaban 2 columnas, hay %d", line, len(rec))
		}
		name := strings.TrimSpace(rec[0])
		if name == "" {
			return nil, fmt.Errorf("línea %d: item_name vacío", line)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: tarifa %q inválida", line, rec[1])
		}
		if rate.IsNegative() {
			return nil, fmt.Errorf("línea %d: tarifa negativa", line)
		}
		rows = append(rows, catalogRow{line: line, name: name, rate: rate})
	}
	return rows, nil
}
