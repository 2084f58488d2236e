package policy

import "sort"

// GreedyPolicy pairs the most urgent waiting patients with free resources.
// Patients are ordered by priority (most urgent first), ties broken by the
// longest current wait, then by id for a stable order. Doctors and beds are
// consumed in id order. It never proposes conflicting triples.
//
// It is the runnable default for the CLI and a reference implementation for
// the policy port; it makes no optimality claim.
type GreedyPolicy struct{}

// NewGreedyPolicy creates a GreedyPolicy.
func NewGreedyPolicy() *GreedyPolicy {
	return &GreedyPolicy{}
}

// Assign implements AssignmentPolicy.
func (g *GreedyPolicy) Assign(snapshot Snapshot) ([]Assignment, error) {
	n := min(len(snapshot.WaitingPatients), min(len(snapshot.AvailableDoctors), len(snapshot.AvailableBeds)))
	if n == 0 {
		return nil, nil
	}

	ranked := make([]PatientInfo, len(snapshot.WaitingPatients))
	copy(ranked, snapshot.WaitingPatients)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority < ranked[j].Priority
		}
		if ranked[i].WaitTime != ranked[j].WaitTime {
			return ranked[i].WaitTime > ranked[j].WaitTime
		}
		return ranked[i].ID < ranked[j].ID
	})

	assignments := make([]Assignment, 0, n)
	for i := 0; i < n; i++ {
		assignments = append(assignments, Assignment{
			PatientID: ranked[i].ID,
			DoctorID:  snapshot.AvailableDoctors[i],
			BedID:     snapshot.AvailableBeds[i],
		})
	}
	return assignments, nil
}
