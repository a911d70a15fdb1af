package output

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Order   *int    `json:"favoriteOrder,omitempty" table:"wide"`
	Icon    string  `json:"icon,omitempty" table:"-"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, err %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON, false).(*JSONFormatter); !ok {
		t.Error("json")
	}
	if _, ok := NewFormatter(FormatYAML, false).(*YAMLFormatter); !ok {
		t.Error("yaml")
	}
	tf, ok := NewFormatter("unknown", true).(*TableFormatter)
	if !ok || !tf.Wide {
		t.Error("unknown formats should fall back to a wide table when asked")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, sample{ID: "1", Name: "Cash", Icon: "bank"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"id": "1"`, `"icon": "bank"`, `"balance": 0`} {
		if !strings.Contains(out, want) {
			t.Errorf("json output missing %s:\n%s", want, out)
		}
	}
}

func TestYAMLFormatter(t *testing.T) {
	order := 2
	data := []sample{{ID: "10", Name: "Savings: main", Balance: 12.5, Order: &order, Icon: "#FF9800"}}

	var buf bytes.Buffer
	if err := (&YAMLFormatter{}).Format(&buf, data); err != nil {
		t.Fatal(err)
	}

	want := `- id: "10"
  name: 'Savings: main'
  balance: 12.5
  favoriteOrder: 2
  icon: '#FF9800'
`
	if got := buf.String(); got != want {
		t.Errorf("yaml output:\n%s\nwant:\n%s", got, want)
	}
}

func TestTableFormatter_Slice(t *testing.T) {
	order := 0
	data := []sample{
		{ID: "1", Name: "Personal Account", Balance: 8500.5, Order: &order, Icon: "bank"},
		{ID: "2", Name: "Family Budget", Balance: 4200},
	}

	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, data); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if fields := strings.Fields(lines[0]); strings.Join(fields, " ") != "ID NAME BALANCE" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "8500.50") {
		t.Errorf("floats should render with two decimals: %q", lines[1])
	}
	if strings.Contains(buf.String(), "bank") {
		t.Error(`table:"-" fields must never render`)
	}

	buf.Reset()
	if err := (&TableFormatter{Wide: true}).Format(&buf, data); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "FAVORITE_ORDER") {
		t.Errorf("wide table should include wide columns:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), " -") {
		t.Errorf("nil pointer cells should render as -:\n%s", buf.String())
	}
}

func TestTableFormatter_Struct(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, &sample{ID: "7", Name: "Stock Portfolio"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "FIELD") || !strings.Contains(out, "Stock Portfolio") {
		t.Errorf("struct table:\n%s", out)
	}
	if strings.Contains(out, "favoriteOrder") {
		t.Error("wide fields are hidden without --wide")
	}
}

func TestTableFormatter_MapSorted(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]string{"wallets": "mock", "auth": "api", "dashboard": "mock"}
	if err := (&TableFormatter{NoHeaders: true}).Format(&buf, data); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !strings.HasPrefix(lines[0], "auth") || !strings.HasPrefix(lines[2], "wallets") {
		t.Errorf("map rows should be sorted by key:\n%s", buf.String())
	}
}

func TestTableFormatter_Fallbacks(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, 42.0); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "42" {
		t.Errorf("scalars fall back to JSON, got %q", buf.String())
	}

	buf.Reset()
	tbl := &Table{}
	tbl.SetHeaders("A", "B")
	tbl.AddRow("1", "2")
	if err := (&TableFormatter{}).Format(&buf, tbl); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "A  B") {
		t.Errorf("prebuilt table:\n%q", buf.String())
	}

	buf.Reset()
	if err := (&TableFormatter{}).Format(&buf, []sample{}); err != nil || !strings.Contains(buf.String(), "ID") {
		t.Errorf("empty slices still print headers, got %q, %v", buf.String(), err)
	}
}
