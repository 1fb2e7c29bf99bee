package store_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/meinhoongagan/clinic-scheduler/db"
	"github.com/meinhoongagan/clinic-scheduler/models"
	"github.com/meinhoongagan/clinic-scheduler/store"
	"github.com/meinhoongagan/clinic-scheduler/utils"
)

func setup(t *testing.T) *store.Store {
	t.Helper()
	_ = godotenv.Load("../.env")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	gdb, err := db.Open(db.Options{DatabaseURL: dbURL})
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(func() { db.Close(gdb) })
	if err := db.Migrate(gdb, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store.New(gdb)
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func newDoctor(name string) *models.Doctor {
	days, _ := models.ParseWeekdays([]string{"Wed", "Mon"})
	return &models.Doctor{
		Name:           name,
		Specialization: "Cardiology",
		Qualification:  "MD",
		Days:           days,
		ReportTime:     9 * 60,
		LeaveTime:      17 * 60,
	}
}

func findDoctor(t *testing.T, st *store.Store, id uint) *models.Doctor {
	t.Helper()
	doctors, err := st.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := range doctors {
		if doctors[i].ID == id {
			return &doctors[i]
		}
	}
	return nil
}

func TestPing(t *testing.T) {
	st := setup(t)
	if err := st.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	name := uniqueName("alice")

	u := &models.User{Username: name, PasswordHash: "hash"}
	if err := st.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected id to be assigned")
	}

	err := st.CreateUser(ctx, &models.User{Username: name, PasswordHash: "other"})
	var conflict *utils.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	got, err := st.UserByUsername(ctx, name)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.PasswordHash != "hash" {
		t.Errorf("duplicate registration changed the hash: %q", got.PasswordHash)
	}
}

func TestUserByUsernameMissing(t *testing.T) {
	st := setup(t)
	_, err := st.UserByUsername(context.Background(), uniqueName("nobody"))
	var notFound *utils.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDoctorRoundTrip(t *testing.T) {
	st := setup(t)
	ctx := context.Background()

	d := newDoctor(uniqueName("Dr. X"))
	if err := st.CreateDoctor(ctx, d); err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { st.DeleteDoctor(ctx, d.ID) })

	got := findDoctor(t, st, d.ID)
	if got == nil {
		t.Fatal("created doctor not listed")
	}
	if !reflect.DeepEqual(got.Days.Strings(), []string{"Mon", "Wed"}) {
		t.Errorf("days: %v", got.Days.Strings())
	}
	if got.ReportTime.String() != "09:00" || got.LeaveTime.String() != "17:00" {
		t.Errorf("times: %s %s", got.ReportTime, got.LeaveTime)
	}

	update := newDoctor("Dr. Y")
	update.ID = d.ID
	update.Days = models.Weekdays{models.Friday}
	update.LeaveTime = 18*60 + 30
	if err := st.UpdateDoctor(ctx, update); err != nil {
		t.Fatalf("update: %v", err)
	}
	got = findDoctor(t, st, d.ID)
	if got.Name != "Dr. Y" || got.LeaveTime.String() != "18:30" || !reflect.DeepEqual(got.Days.Strings(), []string{"Fri"}) {
		t.Errorf("update not applied: %+v", got)
	}

	if err := st.DeleteDoctor(ctx, d.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if findDoctor(t, st, d.ID) != nil {
		t.Error("deleted doctor still listed")
	}
}

func TestDoctorMissing(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	var notFound *utils.NotFoundError

	missing := newDoctor("Dr. Nobody")
	missing.ID = 1 << 30
	if err := st.UpdateDoctor(ctx, missing); !errors.As(err, &notFound) {
		t.Errorf("update: expected NotFoundError, got %v", err)
	}
	if err := st.DeleteDoctor(ctx, missing.ID); !errors.As(err, &notFound) {
		t.Errorf("delete: expected NotFoundError, got %v", err)
	}
}

func TestAppointmentRequiresDoctor(t *testing.T) {
	st := setup(t)
	ctx := context.Background()

	err := st.CreateAppointment(ctx, &models.Appointment{PatientName: "Bob", DoctorID: 1 << 30, Time: 600})
	var notFound *utils.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	d := newDoctor(uniqueName("Dr. X"))
	if err := st.CreateDoctor(ctx, d); err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	a := &models.Appointment{PatientName: "Bob", DoctorID: d.ID, Time: 10 * 60}
	if err := st.CreateAppointment(ctx, a); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	// the appointment is kept when its doctor goes away
	if err := st.DeleteDoctor(ctx, d.ID); err != nil {
		t.Fatalf("delete doctor: %v", err)
	}

	appointments, err := st.ListAppointments(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, got := range appointments {
		if got.ID == a.ID {
			if got.PatientName != "Bob" || got.DoctorID != d.ID || got.Time.String() != "10:00" {
				t.Errorf("appointment changed: %+v", got)
			}
			return
		}
	}
	t.Fatal("appointment not listed")
}

func TestCreateUserConcurrent(t *testing.T) {
	st := setup(t)
	ctx := context.Background()
	name := uniqueName("racer")

	const n = 8
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- st.CreateUser(ctx, &models.User{Username: name, PasswordHash: "hash"})
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		var conflict *utils.ConflictError
		switch {
		case err == nil:
			created++
		case errors.As(err, &conflict):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if created != 1 {
		t.Fatalf("expected exactly one registration to succeed, got %d", created)
	}
}

func TestUpdateDeletedDoctor(t *testing.T) {
	st := setup(t)
	ctx := context.Background()

	d := newDoctor(uniqueName("Dr. X"))
	if err := st.CreateDoctor(ctx, d); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.DeleteDoctor(ctx, d.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	update := newDoctor("Dr. Y")
	update.ID = d.ID
	var notFound *utils.NotFoundError
	if err := st.UpdateDoctor(ctx, update); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if findDoctor(t, st, d.ID) != nil {
		t.Fatal("update brought a deleted doctor back")
	}
}

func TestUpdateDoctorKeepsZeroValues(t *testing.T) {
	st := setup(t)
	ctx := context.Background()

	d := newDoctor(uniqueName("Dr. X"))
	if err := st.CreateDoctor(ctx, d); err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { st.DeleteDoctor(ctx, d.ID) })

	update := newDoctor(d.Name)
	update.ID = d.ID
	update.Days = models.Weekdays{}
	update.ReportTime = 0
	if err := st.UpdateDoctor(ctx, update); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := findDoctor(t, st, d.ID)
	if len(got.Days) != 0 || got.ReportTime.String() != "00:00" {
		t.Errorf("zero values not written: days=%v report=%s", got.Days.Strings(), got.ReportTime)
	}
}
