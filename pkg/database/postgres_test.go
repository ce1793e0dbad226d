package database

import "testing"

func TestConfigDSNIncludesEveryField(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     "5433",
		User:     "svc",
		Password: "secret",
		DBName:   "discoverydb",
		SSLMode:  "require",
	}

	want := "host=db.internal port=5433 user=svc password=secret dbname=discoverydb sslmode=require"
	if got := cfg.dsn(); got != want {
		t.Fatalf("got dsn %q, want %q", got, want)
	}
}
