package models

import "time"

// Customer represents a store customer and the orders placed by them.
type Customer struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     *string   `json:"email" gorm:"type:varchar(255)"`
	Phone     *string   `json:"phone" gorm:"type:varchar(50)"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	Orders    []Order   `json:"orders"`
}

// CreateCustomerRequest is the request body for creating a customer.
type CreateCustomerRequest struct {
	Name  string  `json:"name" validate:"required"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// UpdateCustomerRequest is the request body for a sparse customer update.
// Fields absent from the body keep their stored value.
type UpdateCustomerRequest struct {
	Name  Optional[string] `json:"name"`
	Email Optional[string] `json:"email"`
	Phone Optional[string] `json:"phone"`
}

// Changes returns the column updates carried by the request, keyed by column name.
func (r UpdateCustomerRequest) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	for column, field := range map[string]Optional[string]{"name": r.Name, "email": r.Email, "phone": r.Phone} {
		if !field.Set {
			continue
		}
		if field.Value == nil {
			changes[column] = nil
		} else {
			changes[column] = *field.Value
		}
	}
	return changes
}
