package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"course-service/internal/models"
)

func newContentFixture() (*ContentService, *fakeCourseStore, *fakeVideoStore) {
	courses := newFakeCourseStore()
	videos := &fakeVideoStore{}
	svc := NewContentService(courses, &fakeSectionStore{}, videos, &fakeDeadlineStore{}, newFakeCounterStore(), nil)
	return svc, courses, videos
}

func TestAddSectionAssignsSequentialOrder(t *testing.T) {
	svc, courses, _ := newContentFixture()
	courses.courses["c1"] = models.Course{ID: "c1", Title: "Go"}
	ctx := context.Background()

	titles := []string{"Basics", "Structs", "Interfaces", "Concurrency", "Testing"}
	for i, title := range titles {
		section, err := svc.AddSection(ctx, "c1", title)
		if err != nil {
			t.Fatalf("AddSection(%q): %v", title, err)
		}
		if section.Order != i+1 {
			t.Errorf("section %q: expected order %d, got %d", title, i+1, section.Order)
		}
		if section.ID == "" {
			t.Errorf("section %q: expected a generated id", title)
		}
	}

	sections, err := svc.Sections(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range sections {
		if s.Order != i+1 {
			t.Errorf("listing position %d has order %d, expected %d", i, s.Order, i+1)
		}
	}
}

func TestAddSectionCourseMissing(t *testing.T) {
	svc, _, _ := newContentFixture()
	if _, err := svc.AddSection(context.Background(), "ghost", "Basics"); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestAddVideoOrderIndependentOfSections(t *testing.T) {
	svc, courses, _ := newContentFixture()
	courses.courses["c1"] = models.Course{ID: "c1"}
	ctx := context.Background()

	if _, err := svc.AddSection(ctx, "c1", "Basics"); err != nil {
		t.Fatal(err)
	}
	video, err := svc.AddVideo(ctx, "c1", &models.Video{Title: "Intro", URL: "http://cdn/v1", Duration: 300})
	if err != nil {
		t.Fatal(err)
	}
	if video.Order != 1 {
		t.Errorf("expected first video to get order 1 despite existing sections, got %d", video.Order)
	}
}

func TestAddVideoSectionMissing(t *testing.T) {
	svc, courses, _ := newContentFixture()
	courses.courses["c1"] = models.Course{ID: "c1"}

	v := &models.Video{Title: "Intro", URL: "http://cdn/v1", Duration: 300, SectionID: "ghost"}
	if _, err := svc.AddVideo(context.Background(), "c1", v); !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("expected ErrSectionNotFound, got %v", err)
	}
}

func TestAddVideoRejectsInvalidDuration(t *testing.T) {
	svc, courses, videos := newContentFixture()
	courses.courses["c1"] = models.Course{ID: "c1"}

	v := &models.Video{Title: "Intro", URL: "http://cdn/v1", Duration: 7200}
	if _, err := svc.AddVideo(context.Background(), "c1", v); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if len(videos.videos) != 0 {
		t.Error("expected nothing persisted for a rejected video")
	}
}

func TestVideosListedInOrder(t *testing.T) {
	svc, courses, _ := newContentFixture()
	courses.courses["c1"] = models.Course{ID: "c1"}
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		if _, err := svc.AddVideo(ctx, "c1", &models.Video{Title: title, URL: "http://cdn/" + title, Duration: 60}); err != nil {
			t.Fatal(err)
		}
	}
	videos, err := svc.Videos(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if len(videos) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(videos))
	}
	for i, v := range videos {
		if v.Order != i+1 {
			t.Errorf("position %d has order %d", i, v.Order)
		}
	}
}

func TestAddDeadlineCourseMissing(t *testing.T) {
	svc, _, _ := newContentFixture()
	d := &models.Deadline{Title: "Project due", DueDate: time.Now().Add(72 * time.Hour)}
	if _, err := svc.AddDeadline(context.Background(), "ghost", d); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound, got %v", err)
	}
}
