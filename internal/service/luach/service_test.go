package luach

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luachapp/luach-api/internal/domain/siddur"
	"github.com/luachapp/luach-api/internal/domain/zmanim"
)

func newEntry(id, title string, order int) siddur.Entry {
	return siddur.Entry{
		ID:         id,
		Title:      title,
		Order:      order,
		Importance: siddur.ImportanceCore,
		Nusachim:   []siddur.Nusach{siddur.NusachAshkenaz},
	}
}

func newCategory(id, title string, order int) siddur.Category {
	return siddur.Category{Entry: newEntry(id, title, order)}
}

func newService(id, title string, order int, categoryID string) siddur.Service {
	return siddur.Service{Entry: newEntry(id, title, order), CategoryID: categoryID}
}

func newBucket(id, title string, order int, serviceID string) siddur.Bucket {
	return siddur.Bucket{Entry: newEntry(id, title, order), ServiceID: serviceID}
}

func newItem(id, title string, order int, bucketID string, spec siddur.Applicability) siddur.Item {
	e := newEntry(id, title, order)
	e.Applicability = spec
	return siddur.Item{Entry: e, BucketID: bucketID}
}

func serviceCatalog() *siddur.Catalog {
	shabbatOnly := true
	return &siddur.Catalog{
		Categories: []siddur.Category{
			newCategory("tefillah", "Prayer", 1),
		},
		Services: []siddur.Service{
			newService("shacharit", "Morning", 1, "tefillah"),
		},
		Buckets: []siddur.Bucket{
			newBucket("core", "Core", 1, "shacharit"),
		},
		Items: []siddur.Item{
			newItem("ashrei", "Ashrei", 1, "core", siddur.Applicability{}),
			newItem("shabbat-psalm", "Psalm for Shabbat", 2, "core",
				siddur.Applicability{Shabbat: &shabbatOnly}),
		},
	}
}

func TestServiceToday(t *testing.T) {
	t.Parallel()

	svc := NewService(
		NewContextBuilder(nil, DefaultKeywordTable(), discardLogger()),
		serviceCatalog(),
		discardLogger(),
	)

	lat, lon := 31.778, 35.235
	zone, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)

	today, err := svc.Today(context.Background(), TodayRequest{
		Date:     time.Date(2024, time.April, 10, 12, 0, 0, 0, zone),
		Location: zmanim.Location{Latitude: &lat, Longitude: &lon, Zone: zone},
		Options:  zmanim.DefaultOptions(),
		Locale:   siddur.LocaleIsrael,
		Nusach:   siddur.NusachAshkenaz,
		Mode:     siddur.ModeFull,
	})
	require.NoError(t, err)

	assert.Equal(t, 5784, today.HebrewDate.Year)
	assert.NotEmpty(t, today.Parasha)
	require.NotNil(t, today.Zmanim)
	assert.True(t, today.Zmanim.Sunrise.Ok())

	// Weekday context: the Shabbat psalm is present but not applicable.
	require.Len(t, today.Navigation.Categories, 1)
	items := today.Navigation.Categories[0].Services[0].Buckets[0].Items
	require.Len(t, items, 2)
	for _, it := range items {
		if it.Item.ID == "shabbat-psalm" {
			assert.False(t, it.Applicable)
		} else {
			assert.True(t, it.Applicable)
		}
	}
}

func TestServiceTodayWithoutLocation(t *testing.T) {
	t.Parallel()

	svc := NewService(
		NewContextBuilder(nil, DefaultKeywordTable(), discardLogger()),
		serviceCatalog(),
		discardLogger(),
	)

	today, err := svc.Today(context.Background(), TodayRequest{
		Date:   time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
		Locale: siddur.LocaleDiaspora,
		Nusach: siddur.NusachAshkenaz,
		Mode:   siddur.ModeFull,
	})
	require.NoError(t, err, "a missing location is a prompt-to-configure state, not an error")
	assert.Nil(t, today.Zmanim)
	assert.NotNil(t, today.Context)
	assert.NotNil(t, today.Navigation)
}

func TestServiceTodayRejectsBadCoordinates(t *testing.T) {
	t.Parallel()

	svc := NewService(
		NewContextBuilder(nil, DefaultKeywordTable(), discardLogger()),
		serviceCatalog(),
		discardLogger(),
	)

	lat, lon := 95.0, 0.0
	_, err := svc.Today(context.Background(), TodayRequest{
		Date:     time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
		Location: zmanim.Location{Latitude: &lat, Longitude: &lon, Zone: time.UTC},
		Options:  zmanim.DefaultOptions(),
		Locale:   siddur.LocaleDiaspora,
		Nusach:   siddur.NusachAshkenaz,
		Mode:     siddur.ModeFull,
	})
	assert.ErrorIs(t, err, zmanim.ErrLatitudeOutOfRange)
}
