package memory

import "github.com/ougirez/roadtrack/internal/domain"

// Records cross the store boundary as deep copies: pointer fields never alias stored data.

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneWard(w domain.Ward) domain.Ward {
	w.Area = clonePtr(w.Area)
	w.Population = clonePtr(w.Population)
	w.Description = clonePtr(w.Description)
	return w
}

func cloneRoad(r domain.Road) domain.Road {
	r.Description = clonePtr(r.Description)
	r.Length = clonePtr(r.Length)
	r.Width = clonePtr(r.Width)
	r.StartPoint = clonePtr(r.StartPoint)
	r.EndPoint = clonePtr(r.EndPoint)
	r.ConstructionYear = clonePtr(r.ConstructionYear)
	r.LastMaintenance = clonePtr(r.LastMaintenance)
	r.Coordinates = clonePtr(r.Coordinates)
	return r
}

func cloneVendor(v domain.Vendor) domain.Vendor {
	v.ContactPerson = clonePtr(v.ContactPerson)
	v.Phone = clonePtr(v.Phone)
	v.Email = clonePtr(v.Email)
	v.Address = clonePtr(v.Address)
	v.RegistrationNumber = clonePtr(v.RegistrationNumber)
	v.RegistrationDate = clonePtr(v.RegistrationDate)
	v.Category = clonePtr(v.Category)
	return v
}

func cloneProject(p domain.Project) domain.Project {
	p.Description = clonePtr(p.Description)
	p.CreatedBy = clonePtr(p.CreatedBy)
	return p
}

func cloneActivity(a domain.Activity) domain.Activity {
	a.EntityID = clonePtr(a.EntityID)
	a.EntityType = clonePtr(a.EntityType)
	a.UserID = clonePtr(a.UserID)
	a.UserName = clonePtr(a.UserName)
	return a
}
