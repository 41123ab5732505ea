// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/okafor-dev/pdfproc/db/ent/schema"
	"github.com/okafor-dev/pdfproc/gen/ent/invoice"
	"github.com/okafor-dev/pdfproc/gen/ent/job"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCompanyName is the schema descriptor for company_name field.
	invoiceDescCompanyName := invoiceFields[2].Descriptor()
	// invoice.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	invoice.CompanyNameValidator = invoiceDescCompanyName.Validators[0].(func(string) error)
	// invoiceDescTierUsed is the schema descriptor for tier_used field.
	invoiceDescTierUsed := invoiceFields[5].Descriptor()
	// invoice.TierUsedValidator is a validator for the "tier_used" field. It is called by the builders before save.
	invoice.TierUsedValidator = invoiceDescTierUsed.Validators[0].(func(string) error)
	// invoiceDescConfidence is the schema descriptor for confidence field.
	invoiceDescConfidence := invoiceFields[6].Descriptor()
	// invoice.DefaultConfidence holds the default value on creation for the confidence field.
	invoice.DefaultConfidence = invoiceDescConfidence.Default.(float32)
	// invoiceDescSplitPath is the schema descriptor for split_path field.
	invoiceDescSplitPath := invoiceFields[9].Descriptor()
	// invoice.SplitPathValidator is a validator for the "split_path" field. It is called by the builders before save.
	invoice.SplitPathValidator = invoiceDescSplitPath.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[10].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescFilename is the schema descriptor for filename field.
	jobDescFilename := jobFields[1].Descriptor()
	// job.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	job.FilenameValidator = jobDescFilename.Validators[0].(func(string) error)
	// jobDescSourcePath is the schema descriptor for source_path field.
	jobDescSourcePath := jobFields[2].Descriptor()
	// job.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	job.SourcePathValidator = jobDescSourcePath.Validators[0].(func(string) error)
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[3].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[5].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[6].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
}
