// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestGet_EveryIdHasPage(t *testing.T) {
	for id := SourceNotFoundId; id <= CommandNotFoundId; id++ {
		iss := Get(id)
		if iss == nil {
			t.Errorf("Get(%d) returned nil", id)
			continue
		}
		if iss.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, iss.Id())
		}
		if strings.TrimSpace(string(iss.MarkdownMsg())) == "" {
			t.Errorf("issue %d has an empty message", id)
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	if Get(0) != nil {
		t.Error("Get(0) should return nil")
	}
	if Get(CommandNotFoundId+1) != nil {
		t.Error("Get(out of range) should return nil")
	}
}

func TestIssue_LinksAreCloned(t *testing.T) {
	iss := Get(InvalidEncodingId)
	links := iss.ExtLinks()
	if len(links) == 0 {
		t.Fatal("InvalidEncoding issue should carry an external link")
	}
	links[0] = "mutated"
	if iss.ExtLinks()[0] == "mutated" {
		t.Error("ExtLinks() should return a copy")
	}
}

func TestIssue_Render(t *testing.T) {
	original := render
	t.Cleanup(func() { render = original })

	var gotMd, gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotMd, gotStyle = in, stylePath
		return "rendered", nil
	}

	out, err := Get(SourceNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if out != "rendered" || gotStyle != "dark" {
		t.Errorf("Render() = %q with style %q", out, gotStyle)
	}
	if !strings.Contains(gotMd, "# Input file not found") {
		t.Errorf("markdown missing title: %q", gotMd)
	}
	if !strings.Contains(gotMd, "## See also") || !strings.Contains(gotMd, "wc.1.html") {
		t.Errorf("markdown missing links section: %q", gotMd)
	}

	render = func(string, string) (string, error) { return "", errors.New("boom") }
	if _, err := Get(WriteFailedId).Render("dark"); err == nil {
		t.Error("Render() should propagate renderer errors")
	}
}

func TestIssue_RenderWithGlamour(t *testing.T) {
	out, err := Get(ReadFailedId).Render("notty")
	if err != nil {
		t.Fatalf("Render(notty) returned error: %v", err)
	}
	if !strings.Contains(out, "Read failed") {
		t.Errorf("rendered output missing title: %q", out)
	}
}
