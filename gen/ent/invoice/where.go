// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/okafor-dev/pdfproc/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldJobID, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCompanyName, v))
}

// PoNumber applies equality check predicate on the "po_number" field. It's identical to PoNumberEQ.
func PoNumber(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPoNumber, v))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// TierUsed applies equality check predicate on the "tier_used" field. It's identical to TierUsedEQ.
func TierUsed(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTierUsed, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldConfidence, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldRawText, v))
}

// SplitPath applies equality check predicate on the "split_path" field. It's identical to SplitPathEQ.
func SplitPath(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSplitPath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldJobID, vs...))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldCompanyName, v))
}

// PoNumberEQ applies the EQ predicate on the "po_number" field.
func PoNumberEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPoNumber, v))
}

// PoNumberNEQ applies the NEQ predicate on the "po_number" field.
func PoNumberNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldPoNumber, v))
}

// PoNumberIn applies the In predicate on the "po_number" field.
func PoNumberIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldPoNumber, vs...))
}

// PoNumberNotIn applies the NotIn predicate on the "po_number" field.
func PoNumberNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldPoNumber, vs...))
}

// PoNumberGT applies the GT predicate on the "po_number" field.
func PoNumberGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldPoNumber, v))
}

// PoNumberGTE applies the GTE predicate on the "po_number" field.
func PoNumberGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldPoNumber, v))
}

// PoNumberLT applies the LT predicate on the "po_number" field.
func PoNumberLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldPoNumber, v))
}

// PoNumberLTE applies the LTE predicate on the "po_number" field.
func PoNumberLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldPoNumber, v))
}

// PoNumberContains applies the Contains predicate on the "po_number" field.
func PoNumberContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldPoNumber, v))
}

// PoNumberHasPrefix applies the HasPrefix predicate on the "po_number" field.
func PoNumberHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldPoNumber, v))
}

// PoNumberHasSuffix applies the HasSuffix predicate on the "po_number" field.
func PoNumberHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldPoNumber, v))
}

// PoNumberIsNil applies the IsNil predicate on the "po_number" field.
func PoNumberIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldPoNumber))
}

// PoNumberNotNil applies the NotNil predicate on the "po_number" field.
func PoNumberNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldPoNumber))
}

// PoNumberEqualFold applies the EqualFold predicate on the "po_number" field.
func PoNumberEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldPoNumber, v))
}

// PoNumberContainsFold applies the ContainsFold predicate on the "po_number" field.
func PoNumberContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldPoNumber, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberIsNil applies the IsNil predicate on the "invoice_number" field.
func InvoiceNumberIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldInvoiceNumber))
}

// InvoiceNumberNotNil applies the NotNil predicate on the "invoice_number" field.
func InvoiceNumberNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldInvoiceNumber))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// TierUsedEQ applies the EQ predicate on the "tier_used" field.
func TierUsedEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTierUsed, v))
}

// TierUsedNEQ applies the NEQ predicate on the "tier_used" field.
func TierUsedNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldTierUsed, v))
}

// TierUsedIn applies the In predicate on the "tier_used" field.
func TierUsedIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldTierUsed, vs...))
}

// TierUsedNotIn applies the NotIn predicate on the "tier_used" field.
func TierUsedNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldTierUsed, vs...))
}

// TierUsedGT applies the GT predicate on the "tier_used" field.
func TierUsedGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldTierUsed, v))
}

// TierUsedGTE applies the GTE predicate on the "tier_used" field.
func TierUsedGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldTierUsed, v))
}

// TierUsedLT applies the LT predicate on the "tier_used" field.
func TierUsedLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldTierUsed, v))
}

// TierUsedLTE applies the LTE predicate on the "tier_used" field.
func TierUsedLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldTierUsed, v))
}

// TierUsedContains applies the Contains predicate on the "tier_used" field.
func TierUsedContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldTierUsed, v))
}

// TierUsedHasPrefix applies the HasPrefix predicate on the "tier_used" field.
func TierUsedHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldTierUsed, v))
}

// TierUsedHasSuffix applies the HasSuffix predicate on the "tier_used" field.
func TierUsedHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldTierUsed, v))
}

// TierUsedEqualFold applies the EqualFold predicate on the "tier_used" field.
func TierUsedEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldTierUsed, v))
}

// TierUsedContainsFold applies the ContainsFold predicate on the "tier_used" field.
func TierUsedContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldTierUsed, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldConfidence, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldRawText, v))
}

// ExtractedJSONIsNil applies the IsNil predicate on the "extracted_json" field.
func ExtractedJSONIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldExtractedJSON))
}

// ExtractedJSONNotNil applies the NotNil predicate on the "extracted_json" field.
func ExtractedJSONNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldExtractedJSON))
}

// SplitPathEQ applies the EQ predicate on the "split_path" field.
func SplitPathEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSplitPath, v))
}

// SplitPathNEQ applies the NEQ predicate on the "split_path" field.
func SplitPathNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSplitPath, v))
}

// SplitPathIn applies the In predicate on the "split_path" field.
func SplitPathIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSplitPath, vs...))
}

// SplitPathNotIn applies the NotIn predicate on the "split_path" field.
func SplitPathNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSplitPath, vs...))
}

// SplitPathGT applies the GT predicate on the "split_path" field.
func SplitPathGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSplitPath, v))
}

// SplitPathGTE applies the GTE predicate on the "split_path" field.
func SplitPathGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSplitPath, v))
}

// SplitPathLT applies the LT predicate on the "split_path" field.
func SplitPathLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSplitPath, v))
}

// SplitPathLTE applies the LTE predicate on the "split_path" field.
func SplitPathLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSplitPath, v))
}

// SplitPathContains applies the Contains predicate on the "split_path" field.
func SplitPathContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSplitPath, v))
}

// SplitPathHasPrefix applies the HasPrefix predicate on the "split_path" field.
func SplitPathHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSplitPath, v))
}

// SplitPathHasSuffix applies the HasSuffix predicate on the "split_path" field.
func SplitPathHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSplitPath, v))
}

// SplitPathEqualFold applies the EqualFold predicate on the "split_path" field.
func SplitPathEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSplitPath, v))
}

// SplitPathContainsFold applies the ContainsFold predicate on the "split_path" field.
func SplitPathContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSplitPath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.NotPredicates(p))
}
