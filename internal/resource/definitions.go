// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

package resource

import (
	"github.com/freightdeskhq/freightdesk/internal/platform/constants"
	"github.com/freightdeskhq/freightdesk/internal/platform/schema"
)

// optional derives the partial-update schema from a create schema: same
// rules, nothing required.
func optional(full schema.Schema) schema.Schema {
	partial := make(schema.Schema, len(full))
	for field, rule := range full {
		rule.Required = false
		partial[field] = rule
	}
	return partial
}

var branchSchema = schema.Schema{
	"code":    {Type: schema.String, Required: true},
	"name":    {Type: schema.String, Required: true},
	"address": {Type: schema.String},
	"phone":   {Type: schema.String},
	"status":  {Type: schema.String, Enum: []string{"active", "inactive"}},
}.MustValid()

var truckSchema = schema.Schema{
	"code":     {Type: schema.String, Required: true},
	"regNo":    {Type: schema.String, Required: true},
	"model":    {Type: schema.String},
	"capacity": {Type: schema.Number},
	"branchId": {Type: schema.String, Format: schema.FormatUUID},
	"status":   {Type: schema.String, Enum: []string{"active", "inactive"}},
}.MustValid()

var driverSchema = schema.Schema{
	"code":      {Type: schema.String, Required: true},
	"name":      {Type: schema.String, Required: true},
	"licenseNo": {Type: schema.String},
	"phone":     {Type: schema.String},
	"branchId":  {Type: schema.String, Format: schema.FormatUUID},
	"status":    {Type: schema.String, Enum: []string{"active", "inactive"}},
}.MustValid()

var invoiceSchema = schema.Schema{
	"date":      {Type: schema.String, Required: true, Format: schema.FormatDate},
	"customer":  {Type: schema.String, Required: true},
	"amount":    {Type: schema.Number, Required: true},
	"vatAmount": {Type: schema.Number},
	"billTerm":  {Type: schema.String},
	"branchId":  {Type: schema.String, Format: schema.FormatUUID},
	"status":    {Type: schema.String, Enum: []string{"draft", "issued", "paid", "cancelled"}},
	"notes":     {Type: schema.String},
}.MustValid()

var manifestSchema = schema.Schema{
	"date":       {Type: schema.String, Required: true, Format: schema.FormatDate},
	"fromBranch": {Type: schema.String, Format: schema.FormatUUID},
	"toBranch":   {Type: schema.String, Format: schema.FormatUUID},
	"truckId":    {Type: schema.String, Format: schema.FormatUUID},
	"driverId":   {Type: schema.String, Format: schema.FormatUUID},
	"branchId":   {Type: schema.String, Format: schema.FormatUUID},
	"status":     {Type: schema.String, Enum: []string{"open", "dispatched", "received", "closed"}},
}.MustValid()

var challanSchema = schema.Schema{
	"date":       {Type: schema.String, Required: true, Format: schema.FormatDate},
	"manifestId": {Type: schema.String, Format: schema.FormatUUID},
	"consignor":  {Type: schema.String, Required: true},
	"consignee":  {Type: schema.String, Required: true},
	"packages":   {Type: schema.Number},
	"weight":     {Type: schema.Number},
	"freight":    {Type: schema.Number},
	"branchId":   {Type: schema.String, Format: schema.FormatUUID},
	"status":     {Type: schema.String, Enum: []string{"booked", "in-transit", "delivered", "cancelled"}},
}.MustValid()

var statementSchema = schema.Schema{
	"date":     {Type: schema.String, Required: true, Format: schema.FormatDate},
	"customer": {Type: schema.String, Required: true},
	"amount":   {Type: schema.Number, Required: true},
	"branchId": {Type: schema.String, Format: schema.FormatUUID},
	"status":   {Type: schema.String, Enum: []string{"open", "settled"}},
	"notes":    {Type: schema.String},
}.MustValid()

var dueEntrySchema = schema.Schema{
	"date":     {Type: schema.String, Required: true, Format: schema.FormatDate},
	"party":    {Type: schema.String, Required: true},
	"amount":   {Type: schema.Number, Required: true},
	"branchId": {Type: schema.String, Format: schema.FormatUUID},
	"notes":    {Type: schema.String},
}.MustValid()

var dueReceiptSchema = schema.Schema{
	"date":     {Type: schema.String, Required: true, Format: schema.FormatDate},
	"party":    {Type: schema.String, Required: true},
	"amount":   {Type: schema.Number, Required: true},
	"method":   {Type: schema.String, Enum: []string{"cash", "bank", "cheque"}},
	"branchId": {Type: schema.String, Format: schema.FormatUUID},
	"notes":    {Type: schema.String},
}.MustValid()

var ledgerSchema = schema.Schema{
	"code":           {Type: schema.String, Required: true},
	"name":           {Type: schema.String, Required: true},
	"group":          {Type: schema.String},
	"openingBalance": {Type: schema.Number},
	"status":         {Type: schema.String, Enum: []string{"active", "inactive"}},
}.MustValid()

var billTermSchema = schema.Schema{
	"code": {Type: schema.String, Required: true},
	"name": {Type: schema.String, Required: true},
	"days": {Type: schema.Number, Required: true},
}.MustValid()

var seriesSchema = schema.Schema{
	"code":    {Type: schema.String, Required: true},
	"name":    {Type: schema.String, Required: true},
	"prefix":  {Type: schema.String, Required: true},
	"padding": {Type: schema.Number},
}.MustValid()

var companySchema = schema.Schema{
	"name":    {Type: schema.String, Required: true},
	"address": {Type: schema.String},
	"phone":   {Type: schema.String},
	"email":   {Type: schema.String, Format: schema.FormatEmail},
	"vatNo":   {Type: schema.String},
}.MustValid()

var vatSchema = schema.Schema{
	"rate":    {Type: schema.Number, Required: true},
	"enabled": {Type: schema.Bool},
}.MustValid()

// Definitions is the routing table: every business resource FreightDesk
// serves. Branches, trucks, and drivers share the fleet collection and are
// told apart by the type discriminator; due entries and receipts share the
// due collection the same way.
var Definitions = []Definition{
	{
		Module: constants.ModuleFleet, Path: "/branches", Label: "Branch",
		Collection: "fleet", Type: "branch",
		CreateSchema: branchSchema, UpdateSchema: optional(branchSchema),
	},
	{
		Module: constants.ModuleFleet, Path: "/trucks", Label: "Truck",
		Collection: "fleet", Type: "truck",
		CreateSchema: truckSchema, UpdateSchema: optional(truckSchema),
	},
	{
		Module: constants.ModuleFleet, Path: "/drivers", Label: "Driver",
		Collection: "fleet", Type: "driver",
		CreateSchema: driverSchema, UpdateSchema: optional(driverSchema),
	},
	{
		Module: constants.ModuleBilling, Path: "/invoices", Label: "Invoice",
		Collection: "invoice", BranchScoped: true, NumberSeries: "INV",
		CreateSchema: invoiceSchema, UpdateSchema: optional(invoiceSchema),
	},
	{
		Module: constants.ModuleOperations, Path: "/manifests", Label: "Manifest",
		Collection: "manifest", BranchScoped: true, NumberSeries: "MAN",
		CreateSchema: manifestSchema, UpdateSchema: optional(manifestSchema),
	},
	{
		Module: constants.ModuleOperations, Path: "/challans", Label: "Challan",
		Collection: "challan", BranchScoped: true, NumberSeries: "CHN",
		CreateSchema: challanSchema, UpdateSchema: optional(challanSchema),
	},
	{
		Module: constants.ModuleAccounting, Path: "/statements", Label: "Statement",
		Collection: "statement", BranchScoped: true,
		CreateSchema: statementSchema, UpdateSchema: optional(statementSchema),
	},
	{
		Module: constants.ModuleAccounting, Path: "/due-entries", Label: "Due entry",
		Collection: "due", Type: "entry", BranchScoped: true,
		CreateSchema: dueEntrySchema, UpdateSchema: optional(dueEntrySchema),
	},
	{
		Module: constants.ModuleAccounting, Path: "/due-receipts", Label: "Due receipt",
		Collection: "due", Type: "receipt", BranchScoped: true, NumberSeries: "RCP",
		CreateSchema: dueReceiptSchema, UpdateSchema: optional(dueReceiptSchema),
	},
	{
		Module: constants.ModuleAccounting, Path: "/ledgers", Label: "Ledger",
		Collection: "ledger",
		CreateSchema: ledgerSchema, UpdateSchema: optional(ledgerSchema),
	},
	{
		Module: constants.ModuleSettings, Path: "/settings/bill-terms", Label: "Bill term",
		Collection: "setting", Type: "bill-term",
		CreateSchema: billTermSchema, UpdateSchema: optional(billTermSchema),
	},
	{
		Module: constants.ModuleSettings, Path: "/settings/series", Label: "Number series",
		Collection: "setting", Type: "series",
		CreateSchema: seriesSchema, UpdateSchema: optional(seriesSchema),
	},
	{
		Module: constants.ModuleSettings, Path: "/settings/company", Label: "Company info",
		Collection: "setting", Type: "company", Singleton: true,
		CreateSchema: companySchema, UpdateSchema: companySchema,
	},
	{
		Module: constants.ModuleSettings, Path: "/settings/vat", Label: "VAT configuration",
		Collection: "setting", Type: "vat", Singleton: true,
		CreateSchema: vatSchema, UpdateSchema: vatSchema,
	},
}
