package geometry

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// HittableList is an ordered collection of hittables intersected by linear scan
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: append([]Hittable(nil), objects...)}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes all objects
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the nearest hit across all objects. Each object is tested against
// [rayT.Min, closestSoFar], so a later object only wins if it is strictly closer.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
