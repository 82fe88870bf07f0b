package usecase

import (
	"context"
	"testing"

	"beauty-booking-backend/internal/delivery/dto"
	"beauty-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeScheduleRepo struct {
	replaced []entity.WeeklySchedule
	rows     []entity.WeeklySchedule
}

func (f *fakeScheduleRepo) ReplaceForStaff(_ *gorm.DB, _ uuid.UUID, rows []entity.WeeklySchedule) error {
	f.replaced = rows
	return nil
}
func (f *fakeScheduleRepo) FindByStaffID(_ *gorm.DB, _ uuid.UUID) ([]entity.WeeklySchedule, error) {
	return f.rows, nil
}
func (f *fakeScheduleRepo) FindByStaffAndWeekday(_ *gorm.DB, _ uuid.UUID, _ int) (*entity.WeeklySchedule, error) {
	return nil, nil
}

type fakeTimeOffRepo struct {
	created       *entity.TimeOffRange
	deleteMissing bool
}

func (f *fakeTimeOffRepo) Create(_ *gorm.DB, timeOff *entity.TimeOffRange) error {
	f.created = timeOff
	return nil
}
func (f *fakeTimeOffRepo) FindByID(_ *gorm.DB, _ uuid.UUID) (*entity.TimeOffRange, error) {
	return nil, nil
}
func (f *fakeTimeOffRepo) FindByStaffID(_ *gorm.DB, _ uuid.UUID) ([]entity.TimeOffRange, error) {
	return nil, nil
}
func (f *fakeTimeOffRepo) Delete(_ *gorm.DB, _ uuid.UUID) (int64, error) {
	if f.deleteMissing {
		return 0, nil
	}
	return 1, nil
}

func newScheduleFixture(t *testing.T) (ScheduleUsecase, *fakeScheduleRepo, *fakeTimeOffRepo, uuid.UUID) {
	t.Helper()

	staffID := uuid.New()
	active := true
	staffRepo := &fakeStaffRepo{staff: map[uuid.UUID]*entity.StaffMember{
		staffID: {ID: staffID, FullName: "Dana Reyes", Active: &active},
	}}
	scheduleRepo := &fakeScheduleRepo{}
	timeOffRepo := &fakeTimeOffRepo{}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	uc := NewScheduleUsecase(newTestDB(t), log, scheduleRepo, timeOffRepo, staffRepo)
	return uc, scheduleRepo, timeOffRepo, staffID
}

func fullWeek() []dto.ScheduleDayRequest {
	days := make([]dto.ScheduleDayRequest, 7)
	for i := range days {
		days[i] = dto.ScheduleDayRequest{Weekday: i, Enabled: false}
	}
	// Tuesday through Saturday, 09:00-17:00
	for weekday := 2; weekday <= 6; weekday++ {
		days[weekday] = dto.ScheduleDayRequest{Weekday: weekday, Enabled: true, StartTime: "09:00", EndTime: "17:00"}
	}
	return days
}

func TestSaveSchedule_PersistsMinutes(t *testing.T) {
	uc, scheduleRepo, _, staffID := newScheduleFixture(t)

	resp, err := uc.SaveSchedule(context.Background(), staffID, &dto.SaveScheduleRequest{Days: fullWeek()})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.Len(t, scheduleRepo.replaced, 7)
	tuesday := scheduleRepo.replaced[2]
	assert.True(t, tuesday.Enabled)
	assert.Equal(t, 540, tuesday.StartMinute)
	assert.Equal(t, 1020, tuesday.EndMinute)

	monday := scheduleRepo.replaced[1]
	assert.False(t, monday.Enabled)
	assert.Zero(t, monday.StartMinute)

	require.Len(t, resp.Days, 7)
	assert.Equal(t, "09:00", resp.Days[2].StartTime)
	assert.Equal(t, "17:00", resp.Days[2].EndTime)
	assert.Empty(t, resp.Days[1].StartTime)
}

func TestSaveSchedule_Validation(t *testing.T) {
	uc, _, _, staffID := newScheduleFixture(t)

	days := fullWeek()
	days[0].Weekday = 1 // Monday twice, Sunday missing
	_, err := uc.SaveSchedule(context.Background(), staffID, &dto.SaveScheduleRequest{Days: days})
	assert.ErrorIs(t, err, ErrDuplicateWeekday)

	days = fullWeek()
	days[2].StartTime = "9am"
	_, err = uc.SaveSchedule(context.Background(), staffID, &dto.SaveScheduleRequest{Days: days})
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	days = fullWeek()
	days[2].StartTime = "17:00"
	days[2].EndTime = "09:00"
	_, err = uc.SaveSchedule(context.Background(), staffID, &dto.SaveScheduleRequest{Days: days})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = uc.SaveSchedule(context.Background(), uuid.New(), &dto.SaveScheduleRequest{Days: fullWeek()})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestCreateTimeOff(t *testing.T) {
	uc, _, timeOffRepo, staffID := newScheduleFixture(t)

	resp, err := uc.CreateTimeOff(context.Background(), staffID, &dto.CreateTimeOffRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-14",
		Reason:    "summer holidays",
	})
	require.NoError(t, err)
	require.NotNil(t, timeOffRepo.created)
	assert.Equal(t, "2025-07-01", resp.StartDate)
	assert.Equal(t, "2025-07-14", resp.EndDate)

	_, err = uc.CreateTimeOff(context.Background(), staffID, &dto.CreateTimeOffRequest{
		StartDate: "2025-07-14",
		EndDate:   "2025-07-01",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = uc.CreateTimeOff(context.Background(), staffID, &dto.CreateTimeOffRequest{
		StartDate: "July 1st",
		EndDate:   "2025-07-14",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDeleteTimeOff_NotFound(t *testing.T) {
	uc, _, timeOffRepo, _ := newScheduleFixture(t)

	timeOffRepo.deleteMissing = true
	assert.ErrorIs(t, uc.DeleteTimeOff(context.Background(), uuid.New()), ErrTimeOffNotFound)

	timeOffRepo.deleteMissing = false
	assert.NoError(t, uc.DeleteTimeOff(context.Background(), uuid.New()))
}
