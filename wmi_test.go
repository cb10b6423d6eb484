package md2printer

import (
	"strings"
	"testing"
)

func TestParseWin32Printers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		out       string
		wantNames []string
		wantErr   bool
	}{
		{"empty", "", nil, false},
		{
			name:      "single object",
			out:       `{"Name":"HP","DeviceID":"HP","PrinterStatus":3,"Default":true,"Location":null,"Comment":null}`,
			wantNames: []string{"HP"},
		},
		{
			name:      "array sorted",
			out:       `[{"Name":"Zebra","PrinterStatus":7},{"Name":"Canon","PrinterStatus":4},{"Name":""}]`,
			wantNames: []string{"Canon", "Zebra"},
		},
		{"garbage", "Get-CimInstance : access denied", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseWin32Printers(tt.out)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseWin32Printers() error = %v", err)
			}
			if len(got) != len(tt.wantNames) {
				t.Fatalf("got %d printers, want %d", len(got), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if got[i].Name != name {
					t.Errorf("printer[%d] = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestParseWin32Printers_Fields(t *testing.T) {
	t.Parallel()

	got, err := parseWin32Printers(`{"Name":"HP","DeviceID":"USB001","PrinterStatus":3,"Default":true,"Location":"Lab","Comment":"Color"}`)
	if err != nil {
		t.Fatalf("parseWin32Printers() error = %v", err)
	}
	want := Printer{Name: "HP", DeviceID: "USB001", Status: "idle", Description: "Color", Location: "Lab", Default: true}
	if got[0] != want {
		t.Errorf("printer = %+v, want %+v", got[0], want)
	}
}

func TestPrintScript(t *testing.T) {
	t.Parallel()

	got := printScript(`C:\tmp\it's.pdf`, "Office")
	if !strings.Contains(got, `-FilePath 'C:\tmp\it''s.pdf'`) {
		t.Errorf("file path not quoted: %s", got)
	}
	if !strings.Contains(got, `-ArgumentList '"Office"'`) {
		t.Errorf("printer name not quoted: %s", got)
	}
}
