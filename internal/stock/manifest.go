package stock

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"vending-machine/internal/model"

	"github.com/shopspring/decimal"
)

// Parse reads a manifest. Each non-blank line that does not start with '#'
// is one of:
//
//	product <price> <name...> <quantity>
//	coin <value> <quantity>
//
// Repeated entries are summed.
func Parse(ctx context.Context, r io.Reader) (*Manifest, error) {
	m := &Manifest{
		Products: model.ProductInventory{},
		Change:   model.ChangeInventory{},
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		// Check context cancellation periodically
		if lineNo%1_000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := m.parseLine(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}

	return m, nil
}

func (m *Manifest) parseLine(line string) error {
	fields := strings.Fields(line)

	switch fields[0] {
	case "product":
		if len(fields) < 4 {
			return fmt.Errorf("product entry needs price, name and quantity: %q", line)
		}
		price, err := decimal.NewFromString(fields[1])
		if err != nil {
			return fmt.Errorf("%w: %q", model.ErrInvalidPrice, fields[1])
		}
		qty, err := parseQuantity(fields[len(fields)-1])
		if err != nil {
			return err
		}
		product, err := model.NewProduct(strings.Join(fields[2:len(fields)-1], " "), price)
		if err != nil {
			return err
		}
		m.Products[product] += qty

	case "coin":
		if len(fields) != 3 {
			return fmt.Errorf("coin entry needs value and quantity: %q", line)
		}
		coin, err := model.ParseCoin(fields[1])
		if err != nil {
			return err
		}
		qty, err := parseQuantity(fields[2])
		if err != nil {
			return err
		}
		m.Change[coin] += qty

	default:
		return fmt.Errorf("unknown entry kind %q", fields[0])
	}

	return nil
}

func parseQuantity(s string) (int, error) {
	qty, err := strconv.Atoi(s)
	if err != nil || qty < 0 {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidQuantity, s)
	}
	return qty, nil
}

// decode parses r, gunzipping it first when name ends in ".gz".
func decode(ctx context.Context, r io.Reader, name string) (*Manifest, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}
	return Parse(ctx, r)
}
