package domain

import (
	interfaces "abook/internal/domain/interfaces"
	types "abook/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Field                   = types.Field
	Record                  = types.Record
	CustomField             = types.CustomField
	View                    = types.View
	FieldConfig             = types.FieldConfig
	FormatError             = types.FormatError
	IOError                 = types.IOError
	UnsupportedFieldWarning = types.UnsupportedFieldWarning
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PhotoStore  = interfaces.PhotoStore
	OutputStore = interfaces.OutputStore
	Progress    = interfaces.Progress
	WarningSink = interfaces.WarningSink
)

// Standard fields, re-exported.
const (
	FieldName        = types.FieldName
	FieldEmail       = types.FieldEmail
	FieldAddress     = types.FieldAddress
	FieldAddress2    = types.FieldAddress2
	FieldCity        = types.FieldCity
	FieldState       = types.FieldState
	FieldZip         = types.FieldZip
	FieldCountry     = types.FieldCountry
	FieldPhone       = types.FieldPhone
	FieldWorkphone   = types.FieldWorkphone
	FieldFax         = types.FieldFax
	FieldMobile      = types.FieldMobile
	FieldNick        = types.FieldNick
	FieldURL         = types.FieldURL
	FieldNotes       = types.FieldNotes
	FieldAnniversary = types.FieldAnniversary
	FieldGroups      = types.FieldGroups
)

var (
	AddressFields      = types.AddressFields
	NewRecord          = types.NewRecord
	ParseField         = types.ParseField
	DefaultFieldConfig = types.DefaultFieldConfig
	Errorf             = types.Errorf
	WithFile           = types.WithFile
)

// WarningFunc adapts a function to WarningSink.
type WarningFunc func(UnsupportedFieldWarning)

// Warn calls f(w).
func (f WarningFunc) Warn(w UnsupportedFieldWarning) { f(w) }

// Discard is a WarningSink that drops everything.
var Discard WarningSink = WarningFunc(func(UnsupportedFieldWarning) {})
