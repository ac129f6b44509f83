package parser

import "testing"

func TestNormalizeColumnName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"  Nama Rumah Sakit ":    "nama rumah sakit",
		"STATUS\nPEMBAYARAN":     "status pembayaran",
		"GL  Status\t":           "gl status",
		"":                       "",
		"Tanggal Klaim Diajukan": "tanggal klaim diajukan",
	}
	for in, want := range cases {
		if got := NormalizeColumnName(in); got != want {
			t.Fatalf("NormalizeColumnName(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestIsPlaceholder(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", " ", "-", " - "} {
		if !IsPlaceholder(v) {
			t.Fatalf("IsPlaceholder(%q)=false, want true", v)
		}
	}
	for _, v := range []string{"--", "01-02-2024", "0"} {
		if IsPlaceholder(v) {
			t.Fatalf("IsPlaceholder(%q)=true, want false", v)
		}
	}
}

func TestContainsAnyEqualsAny(t *testing.T) {
	t.Parallel()

	if !ContainsAny("resend - done", []string{"done", "resend"}) {
		t.Fatalf("expected contains")
	}
	if ContainsAny("revision", []string{"done", "resend"}) {
		t.Fatalf("unexpected contains")
	}
	if !EqualsAny("draft", []string{"new", "draft"}) {
		t.Fatalf("expected equals")
	}
	if EqualsAny("drafts", []string{"new", "draft"}) {
		t.Fatalf("unexpected equals")
	}
}
