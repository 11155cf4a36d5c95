package domain

// RankType is the grading system a rank belongs to.
type RankType string

const (
	RankTypeKyu RankType = "kyu"
	RankTypeDan RankType = "dan"
)

func (r RankType) String() string { return string(r) }

func (r RankType) IsValid() bool {
	switch r {
	case RankTypeKyu, RankTypeDan:
		return true
	}
	return false
}

// Category is the kind of curriculum item.
type Category string

const (
	CategoryKata   Category = "Kata"
	CategoryBunkai Category = "Bunkai"
	CategoryKumite Category = "Kumite"
	CategoryWeapon Category = "Weapon"
	CategoryOther  Category = "Other"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryKata, CategoryBunkai, CategoryKumite, CategoryWeapon, CategoryOther:
		return true
	}
	return false
}

// FormState is the lifecycle state of a stored form. A removed form has
// no state because it no longer exists.
type FormState string

const (
	FormStateAlive   FormState = "alive"
	FormStateTrashed FormState = "trashed"
)

func (s FormState) String() string { return string(s) }

// AuditAction represents the kind of lifecycle transition recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate     AuditAction = "CREATE"
	AuditActionUpdate     AuditAction = "UPDATE"
	AuditActionSoftDelete AuditAction = "SOFT_DELETE"
	AuditActionRestore    AuditAction = "RESTORE"
	AuditActionHardDelete AuditAction = "HARD_DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionSoftDelete, AuditActionRestore, AuditActionHardDelete:
		return true
	}
	return false
}
