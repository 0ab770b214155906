package typewriter

import (
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// current returns the tick the live chain expects next.
func current(m Model) TickMsg {
	return TickMsg{ID: m.id, tag: m.tag}
}

func TestTypewriter(t *testing.T) {
	Convey("Given a typewriter started on \"Engage\"", t, func() {
		m := New(WithInterval(10 * time.Millisecond))
		cmd := m.Start("Engage")

		So(cmd, ShouldNotBeNil)
		So(m.Revealed(), ShouldEqual, 0)
		So(m.Active(), ShouldBeTrue)

		Convey("Each tick reveals one rune", func() {
			m, cmd = m.Update(current(m))
			So(m.Revealed(), ShouldEqual, 1)
			So(cmd, ShouldNotBeNil)
			So(m.View(), ShouldEqual, "E"+cursor)
		})

		Convey("It stops exactly at the end", func() {
			for i := 0; i < 6; i++ {
				m, cmd = m.Update(current(m))
			}
			So(m.Revealed(), ShouldEqual, 6)
			So(m.Done(), ShouldBeTrue)
			So(cmd, ShouldBeNil)
			So(m.View(), ShouldEqual, "Engage")

			Convey("And further ticks change nothing", func() {
				m, cmd = m.Update(current(m))
				So(m.Revealed(), ShouldEqual, 6)
				So(cmd, ShouldBeNil)
			})
		})

		Convey("Restarting resets to zero and drops the old chain", func() {
			m, _ = m.Update(current(m))
			m, _ = m.Update(current(m))
			stale := current(m)

			m.Start("Go")
			So(m.Revealed(), ShouldEqual, 0)

			m, cmd = m.Update(stale)
			So(m.Revealed(), ShouldEqual, 0)
			So(cmd, ShouldBeNil)

			m, _ = m.Update(current(m))
			m, cmd = m.Update(current(m))
			So(m.Revealed(), ShouldEqual, 2)
			So(m.Text(), ShouldEqual, "Go")
			So(cmd, ShouldBeNil)
		})

		Convey("Stopping makes pending ticks inert", func() {
			pending := current(m)
			m.Stop()
			m, cmd = m.Update(pending)
			So(m.Revealed(), ShouldEqual, 0)
			So(cmd, ShouldBeNil)
			So(m.View(), ShouldEqual, "")
		})

		Convey("Ticks for another instance are ignored", func() {
			other := New()
			other.Start("Engage")
			m, cmd = m.Update(current(other))
			So(m.Revealed(), ShouldEqual, 0)
			So(cmd, ShouldBeNil)
		})
	})

	Convey("Runes, not bytes, are revealed", t, func() {
		m := New()
		m.Start("ça va 🌊")

		for i := 0; i < 20; i++ {
			m, _ = m.Update(current(m))
		}
		So(m.Revealed(), ShouldEqual, len([]rune("ça va 🌊")))
		So(m.View(), ShouldEqual, "ça va 🌊")
	})

	Convey("Restarting many times always ends complete", t, func() {
		m := New()
		for i := 0; i < 50; i++ {
			m.Start(strings.Repeat("x", i%7))
			if i%3 == 0 {
				m, _ = m.Update(current(m))
			}
		}
		m.Start("final")
		for !m.Done() {
			m, _ = m.Update(current(m))
		}
		So(m.Revealed(), ShouldEqual, 5)
	})

	Convey("SetActive restarts only on a rising edge", t, func() {
		m := New()
		So(m.SetActive(true, "Hi"), ShouldNotBeNil)
		m, _ = m.Update(current(m))
		So(m.Revealed(), ShouldEqual, 1)

		So(m.SetActive(true, "Hi"), ShouldBeNil)
		So(m.Revealed(), ShouldEqual, 1)

		m.SetActive(false, "Hi")
		So(m.Active(), ShouldBeFalse)

		So(m.SetActive(true, "Hi"), ShouldNotBeNil)
		So(m.Revealed(), ShouldEqual, 0)
	})

	Convey("An empty text is complete immediately", t, func() {
		m := New()
		So(m.Start(""), ShouldBeNil)
		So(m.Done(), ShouldBeTrue)
	})
}
