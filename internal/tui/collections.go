package tui

import (
	"fmt"
	"strings"

	"github.com/mvoronin/clinic-sync/models"
)

var collectionTitles = map[models.Collection]string{
	models.CollectionInsuranceCards:  "Insurance cards",
	models.CollectionPayments:        "Payments",
	models.CollectionOutcomeMeasures: "Outcome measures",
}

func collectionTitle(c models.Collection) string {
	if title, ok := collectionTitles[c]; ok {
		return title
	}
	return string(c)
}

type collectionsModel struct {
	idx     int
	pending int
	online  bool
}

func newCollectionsModel() collectionsModel {
	return collectionsModel{}
}

func (m collectionsModel) current() models.Collection {
	return models.Collections[m.idx]
}

func (m collectionsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Collections"))
	b.WriteString("  ")
	b.WriteString(statusBadge(m.online, m.pending))
	b.WriteString("\n\n")
	for i, c := range models.Collections {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + collectionTitle(c) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select · enter open · s sync all · L logout · q quit"))
	return b.String()
}

// statusBadge renders the online/offline indicator and the count of local
// changes waiting for push.
func statusBadge(online bool, pending int) string {
	var b strings.Builder
	if online {
		b.WriteString("online")
	} else {
		b.WriteString(offlineStyle.Render("offline"))
	}
	if pending > 0 {
		b.WriteString(unsyncedStyle.Render(fmt.Sprintf(" · %d unsynced", pending)))
	}
	return b.String()
}
