package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/ava-vibe/ava/filesystem"
	"github.com/ava-vibe/ava/generation"
	"github.com/ava-vibe/ava/key"
	"github.com/ava-vibe/ava/settings"
	"github.com/ava-vibe/ava/style"
	"github.com/ava-vibe/ava/vibe"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.TUIShowPalette, true)
}

func newTestBubble(text string) (*statefulBubble, *generation.ManualScheduler, *settings.Store) {
	store := settings.Open(&settings.Options{
		Storage: settings.NewFileStorage(afero.NewMemMapFs(), "/ava/storage"),
	})
	scheduler := generation.NewManualScheduler()
	controller := generation.New(&generation.Options{Latency: time.Second, Scheduler: scheduler})

	return newBubble(&Options{Settings: store, Controller: controller, Vibe: text}), scheduler, store
}

func press(b *statefulBubble, t tea.KeyType) {
	b.Update(tea.KeyMsg{Type: t})
}

func changed(b *statefulBubble) {
	b.Update(generationChangedMsg{})
}

func TestGenerate(t *testing.T) {
	Convey("Given the vibe \"calm ocean breeze\" in the input", t, func() {
		b, scheduler, _ := newTestBubble("calm ocean breeze")
		So(b.state, ShouldEqual, inputState)
		So(b.View(), ShouldContainSubstring, "Describe your vibe")

		Convey("Enter starts a pending generation", func() {
			press(b, tea.KeyEnter)
			So(b.state, ShouldEqual, pendingState)
			So(scheduler.Len(), ShouldEqual, 1)
			So(b.View(), ShouldContainSubstring, loadingMessages[0])

			Convey("Its completion shows the style and the preview", func() {
				scheduler.Fire(0)
				changed(b)

				So(b.state, ShouldEqual, readyState)
				So(b.current.MustGet(), ShouldResemble, vibe.Synthesize("calm ocean breeze"))
				So(b.previewC.Layout().Names(), ShouldHaveLength, 5)
				So(b.previewC.Running(), ShouldBeTrue)
				So(b.View(), ShouldContainSubstring, "Palette")
			})

			Convey("Esc cancels it", func() {
				press(b, tea.KeyEsc)
				So(b.state, ShouldEqual, inputState)

				scheduler.Fire(0)
				changed(b)
				So(b.state, ShouldEqual, inputState)
				So(b.current.IsAbsent(), ShouldBeTrue)
			})

			Convey("Loading messages rotate only for the live request", func() {
				b.Update(loadingTickMsg{tag: b.loadingTag})
				So(b.loadingMessage, ShouldEqual, 1)

				b.Update(loadingTickMsg{tag: b.loadingTag - 1})
				So(b.loadingMessage, ShouldEqual, 1)
			})
		})

		Convey("Long vibes are submitted whole", func() {
			long := strings.Repeat("endless summer haze over quiet water ", 8)
			b.inputC.SetValue(long)
			So(b.inputC.Value(), ShouldEqual, long)

			press(b, tea.KeyEnter)
			scheduler.Fire(0)
			changed(b)

			So(b.current.MustGet(), ShouldResemble, vibe.Synthesize(long))
		})

		Convey("Blank input does nothing", func() {
			b.inputC.SetValue("   ")
			press(b, tea.KeyEnter)
			So(b.state, ShouldEqual, inputState)
			So(scheduler.Len(), ShouldEqual, 0)
		})

		Convey("The last request wins", func() {
			b.inputC.SetValue("x")
			press(b, tea.KeyEnter)
			b.inputC.SetValue("y")
			press(b, tea.KeyEnter)

			scheduler.Fire(1)
			changed(b)
			scheduler.Fire(0)
			changed(b)

			So(b.state, ShouldEqual, readyState)
			So(b.current.MustGet().Title, ShouldEqual, "y")
		})

		Convey("Esc clears a ready style", func() {
			press(b, tea.KeyEnter)
			scheduler.Fire(0)
			changed(b)

			press(b, tea.KeyEsc)
			So(b.state, ShouldEqual, inputState)
			So(b.current.IsAbsent(), ShouldBeTrue)
			So(b.previewC.Layout().Empty(), ShouldBeTrue)
		})
	})
}

func TestCustomization(t *testing.T) {
	Convey("Given a ready style", t, func() {
		b, scheduler, store := newTestBubble("neon tokyo nights")
		press(b, tea.KeyEnter)
		scheduler.Fire(0)
		changed(b)

		Convey("Ctrl+o cycles complexity and recomposes the preview", func() {
			press(b, tea.KeyCtrlO)
			So(store.Customization().Complexity, ShouldEqual, settings.High)
			So(b.previewC.Layout().Names(), ShouldHaveLength, 8)
		})

		Convey("Ctrl+p cycles speed", func() {
			press(b, tea.KeyCtrlP)
			So(store.Customization().Speed, ShouldEqual, settings.Fast)
			So(b.previewC.Layout().Blocks[0].Duration, ShouldEqual, 200*time.Millisecond)
		})

		Convey("Ctrl+t switches the chrome", func() {
			So(b.chrome, ShouldResemble, style.Dark)
			press(b, tea.KeyCtrlT)
			So(store.Theme(), ShouldEqual, settings.Light)
			So(b.chrome, ShouldResemble, style.Light)
		})

		Convey("Ctrl+r replays the reveal", func() {
			b.previewC.Settle()
			So(b.previewC.Running(), ShouldBeFalse)
			press(b, tea.KeyCtrlR)
			So(b.previewC.Running(), ShouldBeTrue)
			So(b.previewC.Elapsed(), ShouldEqual, time.Duration(0))
		})
	})
}

func TestTeardown(t *testing.T) {
	Convey("Closing the controller stops the subscription", t, func() {
		b, scheduler, _ := newTestBubble("hello")
		press(b, tea.KeyEnter)

		b.controller.Close()
		So(b.waitForGeneration(), ShouldBeNil)

		scheduler.Fire(0)
		changed(b)
		So(b.current.IsAbsent(), ShouldBeTrue)
	})

	Convey("Ctrl+c quits", t, func() {
		b, _, _ := newTestBubble("")
		_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		So(cmd, ShouldNotBeNil)
		So(cmd(), ShouldResemble, tea.Quit())
	})
}
