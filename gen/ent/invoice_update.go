// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/okafor-dev/pdfproc/gen/ent/invoice"
	"github.com/okafor-dev/pdfproc/gen/ent/job"
	"github.com/okafor-dev/pdfproc/gen/ent/predicate"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *InvoiceUpdate) SetJobID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableJobID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *InvoiceUpdate) SetCompanyName(v string) *InvoiceUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCompanyName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetPoNumber sets the "po_number" field.
func (_u *InvoiceUpdate) SetPoNumber(v string) *InvoiceUpdate {
	_u.mutation.SetPoNumber(v)
	return _u
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePoNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPoNumber(*v)
	}
	return _u
}

// ClearPoNumber clears the value of the "po_number" field.
func (_u *InvoiceUpdate) ClearPoNumber() *InvoiceUpdate {
	_u.mutation.ClearPoNumber()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdate) ClearInvoiceNumber() *InvoiceUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetTierUsed sets the "tier_used" field.
func (_u *InvoiceUpdate) SetTierUsed(v string) *InvoiceUpdate {
	_u.mutation.SetTierUsed(v)
	return _u
}

// SetNillableTierUsed sets the "tier_used" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTierUsed(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetTierUsed(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InvoiceUpdate) SetConfidence(v float32) *InvoiceUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableConfidence(v *float32) *InvoiceUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InvoiceUpdate) AddConfidence(v float32) *InvoiceUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *InvoiceUpdate) SetRawText(v string) *InvoiceUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableRawText(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *InvoiceUpdate) ClearRawText() *InvoiceUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *InvoiceUpdate) SetExtractedJSON(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *InvoiceUpdate) AppendExtractedJSON(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *InvoiceUpdate) ClearExtractedJSON() *InvoiceUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetSplitPath sets the "split_path" field.
func (_u *InvoiceUpdate) SetSplitPath(v string) *InvoiceUpdate {
	_u.mutation.SetSplitPath(v)
	return _u
}

// SetNillableSplitPath sets the "split_path" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSplitPath(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSplitPath(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *InvoiceUpdate) SetJob(v *Job) *InvoiceUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *InvoiceUpdate) ClearJob() *InvoiceUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := invoice.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TierUsed(); ok {
		if err := invoice.TierUsedValidator(v); err != nil {
			return &ValidationError{Name: "tier_used", err: fmt.Errorf(`ent: validator failed for field "Invoice.tier_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SplitPath(); ok {
		if err := invoice.SplitPathValidator(v); err != nil {
			return &ValidationError{Name: "split_path", err: fmt.Errorf(`ent: validator failed for field "Invoice.split_path": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.job"`)
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(invoice.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoNumber(); ok {
		_spec.SetField(invoice.FieldPoNumber, field.TypeString, value)
	}
	if _u.mutation.PoNumberCleared() {
		_spec.ClearField(invoice.FieldPoNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TierUsed(); ok {
		_spec.SetField(invoice.FieldTierUsed, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(invoice.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(invoice.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(invoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(invoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(invoice.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(invoice.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.SplitPath(); ok {
		_spec.SetField(invoice.FieldSplitPath, field.TypeString, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.JobTable,
			Columns: []string{invoice.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.JobTable,
			Columns: []string{invoice.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetJobID sets the "job_id" field.
func (_u *InvoiceUpdateOne) SetJobID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableJobID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *InvoiceUpdateOne) SetCompanyName(v string) *InvoiceUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCompanyName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetPoNumber sets the "po_number" field.
func (_u *InvoiceUpdateOne) SetPoNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetPoNumber(v)
	return _u
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePoNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPoNumber(*v)
	}
	return _u
}

// ClearPoNumber clears the value of the "po_number" field.
func (_u *InvoiceUpdateOne) ClearPoNumber() *InvoiceUpdateOne {
	_u.mutation.ClearPoNumber()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdateOne) ClearInvoiceNumber() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetTierUsed sets the "tier_used" field.
func (_u *InvoiceUpdateOne) SetTierUsed(v string) *InvoiceUpdateOne {
	_u.mutation.SetTierUsed(v)
	return _u
}

// SetNillableTierUsed sets the "tier_used" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTierUsed(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTierUsed(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InvoiceUpdateOne) SetConfidence(v float32) *InvoiceUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableConfidence(v *float32) *InvoiceUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InvoiceUpdateOne) AddConfidence(v float32) *InvoiceUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *InvoiceUpdateOne) SetRawText(v string) *InvoiceUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableRawText(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *InvoiceUpdateOne) ClearRawText() *InvoiceUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *InvoiceUpdateOne) SetExtractedJSON(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *InvoiceUpdateOne) AppendExtractedJSON(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *InvoiceUpdateOne) ClearExtractedJSON() *InvoiceUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetSplitPath sets the "split_path" field.
func (_u *InvoiceUpdateOne) SetSplitPath(v string) *InvoiceUpdateOne {
	_u.mutation.SetSplitPath(v)
	return _u
}

// SetNillableSplitPath sets the "split_path" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSplitPath(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSplitPath(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *InvoiceUpdateOne) SetJob(v *Job) *InvoiceUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *InvoiceUpdateOne) ClearJob() *InvoiceUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := invoice.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TierUsed(); ok {
		if err := invoice.TierUsedValidator(v); err != nil {
			return &ValidationError{Name: "tier_used", err: fmt.Errorf(`ent: validator failed for field "Invoice.tier_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SplitPath(); ok {
		if err := invoice.SplitPathValidator(v); err != nil {
			return &ValidationError{Name: "split_path", err: fmt.Errorf(`ent: validator failed for field "Invoice.split_path": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.job"`)
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(invoice.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoNumber(); ok {
		_spec.SetField(invoice.FieldPoNumber, field.TypeString, value)
	}
	if _u.mutation.PoNumberCleared() {
		_spec.ClearField(invoice.FieldPoNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TierUsed(); ok {
		_spec.SetField(invoice.FieldTierUsed, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(invoice.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(invoice.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(invoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(invoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(invoice.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(invoice.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.SplitPath(); ok {
		_spec.SetField(invoice.FieldSplitPath, field.TypeString, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.JobTable,
			Columns: []string{invoice.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.JobTable,
			Columns: []string{invoice.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
