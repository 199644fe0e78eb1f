package report

import (
	"bytes"
	"encoding/xml"
	"io"
	"text/template"
)

const manifestTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!-- {{.Title}} Complete Dependencies List -->
<!-- Generated on {{.Generated}} -->
<!-- Found {{.Count}} artifacts with versions -->

<dependencies>
{{- range .Deps}}
    <dependency>
        <groupId>{{xml $.GroupID}}</groupId>
        <artifactId>{{xml .ArtifactID}}</artifactId>
        <version>{{xml .Version}}</version>
    </dependency>
{{- end}}
</dependencies>
`

var manifestTmpl = template.Must(template.New("manifest").Funcs(template.FuncMap{
	"xml": escapeXML,
}).Parse(manifestTemplate))

// Dependency is one Maven dependency record.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Dependencies returns one record per resolved artifact, sorted by artifact id.
func (r *Report) Dependencies() []Dependency {
	ids := r.Versions.SortedArtifacts()
	deps := make([]Dependency, len(ids))
	for i, id := range ids {
		deps[i] = Dependency{GroupID: r.GroupID, ArtifactID: id, Version: r.Versions[id]}
	}
	return deps
}

// WriteManifest renders the Maven <dependencies> block. The console and the
// .xml file get the same text.
func WriteManifest(r *Report, w io.Writer) error {
	return manifestTmpl.Execute(w, struct {
		Title     string
		Generated string
		Count     int
		GroupID   string
		Deps      []Dependency
	}{
		Title:     r.Title,
		Generated: r.Generated.Format("2006-01-02 15:04:05"),
		Count:     len(r.Versions),
		GroupID:   r.GroupID,
		Deps:      r.Dependencies(),
	})
}

// Manifest returns the text written by [WriteManifest].
func Manifest(r *Report) (string, error) {
	var buf bytes.Buffer
	if err := WriteManifest(r, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func escapeXML(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
