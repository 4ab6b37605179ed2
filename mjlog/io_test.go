package mjlog_test

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kevin-chtw/tw_mjlog/mjlog"
)

const sampleXML = `<mjloggm ver="2.3"><SHUFFLE seed="abc" ref=""/><GO type="9" lobby="0"/><TAIKYOKU oya="0"/></mjloggm>`

func TestReadNodes(t *testing.T) {
	nodes, err := mjlog.ReadNodes(strings.NewReader(sampleXML))
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 3 {
		t.Fatalf("nodes = %d, want 3", len(nodes))
	}
	if nodes[0].Tag != "SHUFFLE" || nodes[0].Attr["seed"] != "abc" {
		t.Errorf("node 0 = %+v", nodes[0])
	}
	if nodes[1].Tag != "GO" || nodes[1].Attr["type"] != "9" {
		t.Errorf("node 1 = %+v", nodes[1])
	}
}

func TestLoadPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.mjlog")
	if err := os.WriteFile(path, []byte(sampleXML), 0644); err != nil {
		t.Fatal(err)
	}
	nodes, err := mjlog.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 3 {
		t.Errorf("nodes = %d, want 3", len(nodes))
	}
}

func TestLoadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.mjlog.gz")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	writer := gzip.NewWriter(file)
	if _, err := writer.Write([]byte(sampleXML)); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	nodes, err := mjlog.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 3 {
		t.Errorf("nodes = %d, want 3", len(nodes))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := mjlog.Load(filepath.Join(t.TempDir(), "absent.mjlog")); err == nil {
		t.Error("Load accepted a missing file")
	}
}
