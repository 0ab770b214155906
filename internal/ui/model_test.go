package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNotifications(t *testing.T) {
	Convey("Given a notifier", t, func() {
		var m Model

		Convey("A notification is shown and scheduled for clearing", func() {
			cmd := m.Update(NotificationMsg("saved"))
			So(cmd, ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "saved")
			So(m.View("line one\nline two"), ShouldEndWith, "line two  saved")
		})

		Convey("An older clear leaves a newer notification alone", func() {
			m.Update(NotificationMsg("first"))
			stale := ClearNotificationMsg{serial: m.serial}
			m.Update(NotificationMsg("second"))

			m.Update(stale)
			So(m.Current(), ShouldEqual, "second")

			m.Update(ClearNotificationMsg{serial: m.serial})
			So(m.Current(), ShouldBeEmpty)
			So(m.View("content"), ShouldEqual, "content")
		})
	})
}
