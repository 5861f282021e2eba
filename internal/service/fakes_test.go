package service

import (
	"context"
	"sort"

	"course-service/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory stand-ins for the mongo repositories. Single-document lookups
// report absence as mongo.ErrNoDocuments, matching the real repositories.

type fakeCourseStore struct {
	courses map[string]models.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[string]models.Course)}
}

func (f *fakeCourseStore) FindAll(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourseStore) FindByID(ctx context.Context, id string) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &c, nil
}

func (f *fakeCourseStore) Create(ctx context.Context, course *models.Course) error {
	f.courses[course.ID] = *course
	return nil
}

func (f *fakeCourseStore) Delete(ctx context.Context, id string) error {
	delete(f.courses, id)
	return nil
}

type fakeSectionStore struct {
	sections []models.Section
}

func (f *fakeSectionStore) Create(ctx context.Context, section *models.Section) error {
	f.sections = append(f.sections, *section)
	return nil
}

func (f *fakeSectionStore) FindByID(ctx context.Context, id string) (*models.Section, error) {
	for _, s := range f.sections {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeSectionStore) FindByCourse(ctx context.Context, courseID string) ([]models.Section, error) {
	var out []models.Section
	for _, s := range f.sections {
		if s.CourseID == courseID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeSectionStore) DeleteByCourse(ctx context.Context, courseID string) error {
	kept := f.sections[:0]
	for _, s := range f.sections {
		if s.CourseID != courseID {
			kept = append(kept, s)
		}
	}
	f.sections = kept
	return nil
}

type fakeVideoStore struct {
	videos []models.Video
}

func (f *fakeVideoStore) Create(ctx context.Context, video *models.Video) error {
	f.videos = append(f.videos, *video)
	return nil
}

func (f *fakeVideoStore) FindByID(ctx context.Context, id string) (*models.Video, error) {
	for _, v := range f.videos {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeVideoStore) FindByCourse(ctx context.Context, courseID string, sortByOrder bool) ([]models.Video, error) {
	var out []models.Video
	for _, v := range f.videos {
		if v.CourseID == courseID {
			out = append(out, v)
		}
	}
	if sortByOrder {
		sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	}
	return out, nil
}

func (f *fakeVideoStore) DeleteByCourse(ctx context.Context, courseID string) error {
	kept := f.videos[:0]
	for _, v := range f.videos {
		if v.CourseID != courseID {
			kept = append(kept, v)
		}
	}
	f.videos = kept
	return nil
}

type fakeDeadlineStore struct {
	deadlines []models.Deadline
}

func (f *fakeDeadlineStore) Create(ctx context.Context, deadline *models.Deadline) error {
	f.deadlines = append(f.deadlines, *deadline)
	return nil
}

func (f *fakeDeadlineStore) FindByCourse(ctx context.Context, courseID string) ([]models.Deadline, error) {
	var out []models.Deadline
	for _, d := range f.deadlines {
		if d.CourseID == courseID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (f *fakeDeadlineStore) DeleteByCourse(ctx context.Context, courseID string) error {
	kept := f.deadlines[:0]
	for _, d := range f.deadlines {
		if d.CourseID != courseID {
			kept = append(kept, d)
		}
	}
	f.deadlines = kept
	return nil
}

type fakeCounterStore struct {
	seq map[string]int
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{seq: make(map[string]int)}
}

func (f *fakeCounterStore) Next(ctx context.Context, courseID, kind string) (int, error) {
	key := courseID + ":" + kind
	f.seq[key]++
	return f.seq[key], nil
}

func (f *fakeCounterStore) DeleteByCourse(ctx context.Context, courseID string) error {
	prefix := courseID + ":"
	for key := range f.seq {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			delete(f.seq, key)
		}
	}
	return nil
}

type fakeAssignmentStore struct {
	assignments map[string]models.Assignment
}

func newFakeAssignmentStore() *fakeAssignmentStore {
	return &fakeAssignmentStore{assignments: make(map[string]models.Assignment)}
}

func (f *fakeAssignmentStore) Create(ctx context.Context, assignment *models.Assignment) error {
	f.assignments[assignment.ID] = *assignment
	return nil
}

func (f *fakeAssignmentStore) FindByID(ctx context.Context, id string) (*models.Assignment, error) {
	a, ok := f.assignments[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &a, nil
}

func (f *fakeAssignmentStore) FindByCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	var out []models.Assignment
	for _, a := range f.assignments {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentStore) FindByIDs(ctx context.Context, ids []string) (map[string]models.Assignment, error) {
	out := make(map[string]models.Assignment)
	for _, id := range ids {
		if a, ok := f.assignments[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

type fakeSubmissionStore struct {
	submissions []models.AssignmentSubmission
}

func (f *fakeSubmissionStore) Create(ctx context.Context, submission *models.AssignmentSubmission) error {
	f.submissions = append(f.submissions, *submission)
	return nil
}

func (f *fakeSubmissionStore) FindByUser(ctx context.Context, userID string) ([]models.AssignmentSubmission, error) {
	var out []models.AssignmentSubmission
	for _, s := range f.submissions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeProgressStore struct {
	records map[string]models.VideoProgress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: make(map[string]models.VideoProgress)}
}

func progressKey(userID, videoID string) string {
	return userID + "|" + videoID
}

func (f *fakeProgressStore) Upsert(ctx context.Context, progress *models.VideoProgress) (*models.VideoProgress, error) {
	key := progressKey(progress.UserID, progress.VideoID)
	if existing, ok := f.records[key]; ok {
		existing.WatchedSeconds = progress.WatchedSeconds
		existing.Completed = progress.Completed
		existing.LastWatched = progress.LastWatched
		f.records[key] = existing
		return &existing, nil
	}
	f.records[key] = *progress
	stored := f.records[key]
	return &stored, nil
}

func (f *fakeProgressStore) FindByUserAndVideo(ctx context.Context, userID, videoID string) (*models.VideoProgress, error) {
	p, ok := f.records[progressKey(userID, videoID)]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

func (f *fakeProgressStore) FindByUserAndVideos(ctx context.Context, userID string, videoIDs []string) (map[string]models.VideoProgress, error) {
	out := make(map[string]models.VideoProgress)
	for _, id := range videoIDs {
		if p, ok := f.records[progressKey(userID, id)]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakeProgressStore) TotalWatchedSeconds(ctx context.Context, userID string) (int, error) {
	total := 0
	for _, p := range f.records {
		if p.UserID == userID {
			total += p.WatchedSeconds
		}
	}
	return total, nil
}

type fakeEnrollmentStore struct {
	enrollments []models.Enrollment
}

func (f *fakeEnrollmentStore) Create(ctx context.Context, enrollment *models.Enrollment) error {
	f.enrollments = append(f.enrollments, *enrollment)
	return nil
}

func (f *fakeEnrollmentStore) FindByCourseAndUser(ctx context.Context, courseID, userID string) (*models.Enrollment, error) {
	for _, e := range f.enrollments {
		if e.CourseID == courseID && e.UserID == userID {
			return &e, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeEnrollmentStore) FindByUser(ctx context.Context, userID string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range f.enrollments {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) CountActiveByCourse(ctx context.Context, courseID string) (int64, error) {
	var count int64
	for _, e := range f.enrollments {
		if e.CourseID == courseID && e.Status == models.EnrollmentStatusActive {
			count++
		}
	}
	return count, nil
}
