// Medical resource records (doctors, beds) and the pool that owns them.
// Resources are created once at simulation start; assignment is exclusive:
// at most one patient per doctor and per bed at any simulated instant.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Doctor is a treating physician. A patient holds only the doctor's id,
// never the record itself.
type Doctor struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	IsAvailable     bool    `json:"is_available"`
	CurrentPatient  int     `json:"current_patient"` // -1 when available
	PatientsTreated int     `json:"patients_treated"`
	TotalBusyTime   float64 `json:"total_busy_time"` // cumulative treatment minutes
}

// Assign marks the doctor busy with the given patient.
func (d *Doctor) Assign(patientID int) {
	if !d.IsAvailable {
		panic(fmt.Sprintf("doctor %d: assigned while treating patient %d", d.ID, d.CurrentPatient))
	}
	d.IsAvailable = false
	d.CurrentPatient = patientID
	d.PatientsTreated++
}

// Release frees the doctor and accumulates the treatment time.
func (d *Doctor) Release(treatmentTime float64) {
	d.IsAvailable = true
	d.CurrentPatient = unset
	d.TotalBusyTime += treatmentTime
}

// UtilizationRate returns the share of elapsed simulated time this doctor
// spent treating, as a percentage.
func (d *Doctor) UtilizationRate(totalTime float64) float64 {
	if totalTime == 0 {
		return 0
	}
	return d.TotalBusyTime / totalTime * 100
}

// Bed is a treatment bed.
type Bed struct {
	ID             int     `json:"id"`
	IsAvailable    bool    `json:"is_available"`
	CurrentPatient int     `json:"current_patient"` // -1 when free
	TotalBusyTime  float64 `json:"total_busy_time"` // cumulative occupancy minutes
}

// Assign marks the bed occupied by the given patient.
func (b *Bed) Assign(patientID int) {
	if !b.IsAvailable {
		panic(fmt.Sprintf("bed %d: assigned while occupied by patient %d", b.ID, b.CurrentPatient))
	}
	b.IsAvailable = false
	b.CurrentPatient = patientID
}

// Release frees the bed and accumulates the occupancy time.
func (b *Bed) Release(occupancyTime float64) {
	b.IsAvailable = true
	b.CurrentPatient = unset
	b.TotalBusyTime += occupancyTime
}

// OccupancyRate returns the share of elapsed simulated time this bed was
// occupied, as a percentage.
func (b *Bed) OccupancyRate(totalTime float64) float64 {
	if totalTime == 0 {
		return 0
	}
	return b.TotalBusyTime / totalTime * 100
}

// ResourcePool owns the fixed-size doctor and bed collections. Cardinality
// never changes during a run.
type ResourcePool struct {
	Doctors []*Doctor
	Beds    []*Bed
}

// NewResourcePool creates numDoctors doctors and numBeds beds, all available.
// Doctors are named Dr. A, Dr. B, ... for readable logs.
func NewResourcePool(numDoctors, numBeds int) *ResourcePool {
	pool := &ResourcePool{
		Doctors: make([]*Doctor, 0, numDoctors),
		Beds:    make([]*Bed, 0, numBeds),
	}
	for i := 0; i < numDoctors; i++ {
		pool.Doctors = append(pool.Doctors, &Doctor{
			ID:             i,
			Name:           fmt.Sprintf("Dr. %c", 'A'+rune(i%26)),
			IsAvailable:    true,
			CurrentPatient: unset,
		})
	}
	for i := 0; i < numBeds; i++ {
		pool.Beds = append(pool.Beds, &Bed{
			ID:             i,
			IsAvailable:    true,
			CurrentPatient: unset,
		})
	}
	return pool
}

// AvailableDoctors returns the doctors currently free, in id order.
func (rp *ResourcePool) AvailableDoctors() []*Doctor {
	avail := make([]*Doctor, 0, len(rp.Doctors))
	for _, d := range rp.Doctors {
		if d.IsAvailable {
			avail = append(avail, d)
		}
	}
	return avail
}

// AvailableBeds returns the beds currently free, in id order.
func (rp *ResourcePool) AvailableBeds() []*Bed {
	avail := make([]*Bed, 0, len(rp.Beds))
	for _, b := range rp.Beds {
		if b.IsAvailable {
			avail = append(avail, b)
		}
	}
	return avail
}

// DoctorByID returns the doctor with the given id, or nil.
func (rp *ResourcePool) DoctorByID(id int) *Doctor {
	if id < 0 || id >= len(rp.Doctors) {
		return nil
	}
	return rp.Doctors[id]
}

// BedByID returns the bed with the given id, or nil.
func (rp *ResourcePool) BedByID(id int) *Bed {
	if id < 0 || id >= len(rp.Beds) {
		return nil
	}
	return rp.Beds[id]
}

// ResourceStats is the utilization snapshot reported in results and metric
// samples. Rates are percentages of elapsed simulated time.
type ResourceStats struct {
	DoctorCount           int       `json:"doctor_count"`
	DoctorsAvailable      int       `json:"doctors_available"`
	DoctorUtilization     []float64 `json:"doctor_utilization"`
	MeanDoctorUtilization float64   `json:"mean_doctor_utilization"`
	TotalPatientsTreated  int       `json:"total_patients_treated"`

	BedCount         int       `json:"bed_count"`
	BedsAvailable    int       `json:"beds_available"`
	BedOccupancy     []float64 `json:"bed_occupancy"`
	MeanBedOccupancy float64   `json:"mean_bed_occupancy"`
}

// Statistics computes utilization rates over the elapsed simulated time.
func (rp *ResourcePool) Statistics(totalTime float64) ResourceStats {
	stats := ResourceStats{
		DoctorCount:       len(rp.Doctors),
		DoctorsAvailable:  len(rp.AvailableDoctors()),
		DoctorUtilization: make([]float64, 0, len(rp.Doctors)),
		BedCount:          len(rp.Beds),
		BedsAvailable:     len(rp.AvailableBeds()),
		BedOccupancy:      make([]float64, 0, len(rp.Beds)),
	}
	for _, d := range rp.Doctors {
		stats.DoctorUtilization = append(stats.DoctorUtilization, d.UtilizationRate(totalTime))
		stats.TotalPatientsTreated += d.PatientsTreated
	}
	for _, b := range rp.Beds {
		stats.BedOccupancy = append(stats.BedOccupancy, b.OccupancyRate(totalTime))
	}
	if len(stats.DoctorUtilization) > 0 {
		stats.MeanDoctorUtilization = stat.Mean(stats.DoctorUtilization, nil)
	}
	if len(stats.BedOccupancy) > 0 {
		stats.MeanBedOccupancy = stat.Mean(stats.BedOccupancy, nil)
	}
	return stats
}

// String returns a compact availability summary.
func (rp *ResourcePool) String() string {
	return fmt.Sprintf("Resources(Doctors: %d/%d, Beds: %d/%d)",
		len(rp.AvailableDoctors()), len(rp.Doctors),
		len(rp.AvailableBeds()), len(rp.Beds))
}
