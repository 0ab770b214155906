package mini

import (
	"bytes"
	"context"
	"testing"

	"github.com/ava-vibe/ava/filesystem"
	"github.com/ava-vibe/ava/generation"
	"github.com/ava-vibe/ava/settings"
	"github.com/ava-vibe/ava/vibe"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func init() {
	filesystem.SetMemMapFs()
}

// scripted answers prompts from a fixed list, then interrupts.
type scripted struct {
	answers []string
	asked   []string
}

func (s *scripted) next(message string) (string, error) {
	s.asked = append(s.asked, message)
	if len(s.answers) == 0 {
		return "", context.Canceled
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scripted) Input(message string, _ func(string) []string) (string, error) {
	return s.next(message)
}

func (s *scripted) Select(message string, _ []string, _ string) (string, error) {
	return s.next(message)
}

func newTestMini(text string, answers ...string) (*mini, *scripted, *bytes.Buffer, *settings.Store) {
	store := settings.Open(&settings.Options{
		Storage: settings.NewFileStorage(afero.NewMemMapFs(), "/ava/storage"),
	})
	out := new(bytes.Buffer)
	prompt := &scripted{answers: answers}

	m := newMini(&Options{
		Settings:   store,
		Controller: generation.New(&generation.Options{Latency: 0}),
		Vibe:       text,
		Out:        out,
	}, prompt)

	return m, prompt, out, store
}

func TestMini(t *testing.T) {
	Convey("Given a vibe typed at the prompt", t, func() {
		m, prompt, out, _ := newTestMini("", "calm ocean breeze", actionQuit)
		defer m.controller.Close()

		So(m.run(context.Background()), ShouldBeNil)

		Convey("The style is printed and the loop quits", func() {
			So(m.state, ShouldEqual, quitState)
			So(prompt.asked, ShouldHaveLength, 2)
			So(m.style.MustGet(), ShouldResemble, vibe.Synthesize("calm ocean breeze"))
			So(out.String(), ShouldContainSubstring, "Calm ocean breeze")
			So(out.String(), ShouldContainSubstring, "hsl(262, 77%, 57%)")
			So(out.String(), ShouldContainSubstring, "5 blocks, normal speed, revealed in 1500ms")
		})
	})

	Convey("Given a prefilled vibe", t, func() {
		m, prompt, _, _ := newTestMini("neon tokyo nights", actionQuit)
		defer m.controller.Close()

		So(m.state, ShouldEqual, generateState)
		So(m.run(context.Background()), ShouldBeNil)
		So(prompt.asked, ShouldHaveLength, 1)
		So(m.style.MustGet().Title, ShouldEqual, "neon tokyo nights")
	})

	Convey("Customizing updates the settings and returns to the result menu", t, func() {
		m, _, out, store := newTestMini("x", actionCustomize, "fast", "high", actionQuit)
		defer m.controller.Close()

		So(m.run(context.Background()), ShouldBeNil)
		So(store.Customization(), ShouldResemble, settings.Customization{Speed: settings.Fast, Complexity: settings.High})
		So(out.String(), ShouldContainSubstring, "8 blocks, fast speed, revealed in 900ms")
	})

	Convey("Back leaves the settings untouched", t, func() {
		m, _, _, store := newTestMini("x", actionCustomize, actionBack, actionQuit)
		defer m.controller.Close()

		So(m.run(context.Background()), ShouldBeNil)
		So(store.Customization(), ShouldResemble, settings.DefaultCustomization())
		So(m.state, ShouldEqual, quitState)
	})

	Convey("A new vibe goes back to the prompt", t, func() {
		m, _, _, _ := newTestMini("x", actionNewVibe, "y", actionQuit)
		defer m.controller.Close()

		So(m.run(context.Background()), ShouldBeNil)
		So(m.style.MustGet().Title, ShouldEqual, "y")
	})

	Convey("A blank vibe is rejected without generating", t, func() {
		m, _, out, _ := newTestMini("", "   ")
		defer m.controller.Close()

		So(m.run(context.Background()), ShouldBeNil)
		So(out.String(), ShouldContainSubstring, "Describe a vibe first")
		So(m.style.IsAbsent(), ShouldBeTrue)
	})
}
