package main

import "docgraph/backend/internal/model"

// Seed fixtures for the Petersfield borehole record set. Documents all live
// in one SharePoint folder and share one owner.

func strPtr(s string) *string { return &s }

var seedUser = model.User{
	ID:          "354a020c-cf84-4e30-afd3-07ba0b07c4fc",
	Email:       "tom@hoppa.ai",
	DisplayName: "Tom Goldsmith",
}

var seedFolder = model.Folder{
	ID:        "01FCBACZKAABKJMBSJT5CJHMDH26OD3W33",
	Name:      "Borehole Records - Petersfield",
	Path:      "/drives/b!CPeuVHbWjUyD_9doA6Td6m8HS9IQoW9DtDb__nkwj-M92i-qf_-pRKp11I7IA7Pu/root:/Main/Sample Documents/Borehole Records - Petersfield",
	DriveType: "documentLibrary",
	DriveID:   "b!CPeuVHbWjUyD_9doA6Td6m8HS9IQoW9DtDb__nkwj-M92i-qf_-pRKp11I7IA7Pu",
	SiteID:    "54aef708-d676-4c8d-83ff-d76803a4ddea",
}

func boreholeDocument(id, name, uniqueID string) model.DocumentCreate {
	return model.DocumentCreate{
		ID:                   id,
		Name:                 name,
		Label:                name,
		Size:                 3040,
		Source:               "sharepoint",
		Type:                 "application/pdf",
		CreatedDateTime:      "2024-12-17T10:31:25Z",
		LastModifiedDateTime: "2024-12-17T10:31:25Z",
		WebURL:               "https://hoppatechnologies.sharepoint.com/sites/SharePointDemoSite/Shared%20Documents/Main/Sample%20Documents/Borehole%20Records%20-%20Petersfield/" + name,
		DownloadURL:          "https://hoppatechnologies.sharepoint.com/sites/SharePointDemoSite/_layouts/15/download.aspx?UniqueId=" + uniqueID + "&ApiVersion=2.0",
		DriveID:              seedFolder.DriveID,
		SiteID:               seedFolder.SiteID,
		Status:               "N/A",
		ParentReferenceID:    seedFolder.ID,
		CreatedBy:            seedUser.ID,
		LastModifiedBy:       seedUser.ID,
	}
}

var seedDocuments = []model.DocumentCreate{
	boreholeDocument("01FCBACZIFWRL22JSIMJAYZJ5UAYIDY36K", "BGS borehole 426100 (SU72SW51).pdf", "ad57b405-4826-4162-8ca7-b406103c6fca"),
	boreholeDocument("01FCBACZSU72SW59", "BGS borehole 12709323 (SU72SW59).pdf", "example1"),
	boreholeDocument("01FCBACZSU72SE15", "BGS borehole 426030 (SU72SE15).pdf", "example2"),
	boreholeDocument("01FCBACZSU72SW60", "BGS borehole 15952134 (SU72SW60).pdf", "example3"),
}

var seedFileMetadata = model.FileMetadata{
	DocumentID:           "01FCBACZIFWRL22JSIMJAYZJ5UAYIDY36K",
	MimeType:             "application/pdf",
	QuickXorHash:         "yXrJBwDlOIJTPw9eEQO6o2UT8NE=",
	SharedScope:          "users",
	CreatedDateTime:      "2024-12-17T10:31:25Z",
	LastModifiedDateTime: "2024-12-17T10:31:25Z",
}

var seedVersion = model.Version{
	DocumentID:    "01FCBACZIFWRL22JSIMJAYZJ5UAYIDY36K",
	ETag:          "\"{AD57B405-4826-4162-8CA7-B406103C6FCA},1\"",
	CTag:          "\"c:{AD57B405-4826-4162-8CA7-B406103C6FCA},1\"",
	Timestamp:     "2024-12-17T10:31:25Z",
	VersionNumber: 1,
}

var seedSession = model.Session{
	SessionID:   "soft-mails-cry",
	SessionName: "Engineering Design - Ground Investigation Records",
	CreatedAt:   "2024-11-09T15:28:55.609Z",
	CreatedBy:   "Tom Goldsmith",
	FileCount:   52,
	Status:      "draft",
}

// classifierFixture pairs a classifier with its code rows so both can be
// posted in one pass.
type classifierFixture struct {
	Classifier model.Classifier
	Data       []model.ClassifierData
}

var seedClassifiers = []classifierFixture{
	{
		Classifier: model.Classifier{
			ID:          "ISO1",
			Name:        "Project",
			Prompt:      "Identify any keywords or codes related to project names, phases, specific locations, or team allocations.",
			Description: "Identifies the project or area linked to this document.",
		},
		Data: []model.ClassifierData{
			{ClassifierID: "ISO1", Code: "XXXV", Description: "Non-specific to project", Prompt: strPtr("")},
			{ClassifierID: "ISO1", Code: "HOPPA", Description: "Hoppa Technologies Limited", Prompt: strPtr("")},
			{ClassifierID: "ISO1", Code: "EHCRA", Description: "East Hampshire Petersfield Climate Resilience Audit & Geological Assessments"},
		},
	},
	{
		Classifier: model.Classifier{
			ID:          "ISO2",
			Name:        "Originator",
			Prompt:      "Identify any organization names, initials, or references indicating authorship or originating party.",
			Description: "Determines the organization originating this document.",
		},
		Data: []model.ClassifierData{
			{ClassifierID: "ISO2", Code: "HOP", Description: "Hoppa Technologies", Prompt: strPtr("Locate mentions of 'Hoppa Technologies' or shortened references.")},
			{ClassifierID: "ISO2", Code: "SER", Description: "Generic Services Provider; unspecified", Prompt: strPtr("Identify mentions of generic terms like 'service provider', 'contractor', or 'subcontractor'.")},
			{ClassifierID: "ISO2", Code: "CLN", Description: "Generic Client Organisation; unspecified", Prompt: strPtr("Search for generic client-related terms like 'client', 'customer', 'organization'.")},
			{ClassifierID: "ISO2", Code: "BGS", Description: "British Geological Survey"},
		},
	},
	{
		Classifier: model.Classifier{
			ID:          "ISO3",
			Name:        "Functional Breakdown",
			Prompt:      "Identify terms pointing to business functions or domains, such as finance, risk, commercial, legal, or operations.",
			Description: "Defines the document's functional area, e.g., finance or legal.",
		},
		Data: []model.ClassifierData{
			{ClassifierID: "ISO3", Code: "ZZ", Description: "Applies to all functional areas", Prompt: strPtr("Confirm if applicable across all functions or departments.")},
			{ClassifierID: "ISO3", Code: "XX", Description: "Non-specific to functional area", Prompt: strPtr("Check for non-functional or general terms, indicating broad relevance.")},
			{ClassifierID: "ISO3", Code: "FN", Description: "Financial, commercial, risk", Prompt: strPtr("Identify any references to financial terms, economic analysis, risk management, or corporate finance.")},
			{ClassifierID: "ISO3", Code: "LG", Description: "Legal, insurance, liability", Prompt: strPtr("Locate mentions of legal compliance, contracts, liability, or regulatory terms.")},
			{ClassifierID: "ISO3", Code: "VG", Description: "Surveys; geotechnical, environmental, other"},
			{ClassifierID: "ISO3", Code: "HS", Description: "Health and Safety"},
			{ClassifierID: "ISO3", Code: "TP", Description: "Town, infrastructure planning"},
			{ClassifierID: "ISO3", Code: "ED", Description: "Engineering"},
			{ClassifierID: "ISO3", Code: "AC", Description: "Approvals & consents"},
		},
	},
	{
		Classifier: model.Classifier{
			ID:          "ISO4",
			Name:        "Spatial Breakdown",
			Prompt:      "Identify references to physical layouts, levels, specific locations, site planning, or building zones.",
			Description: "Specifies the physical area, such as a site or floor plan.",
		},
		Data: []model.ClassifierData{
			{ClassifierID: "ISO4", Code: "ZZ", Description: "Relevant to all physical areas", Prompt: strPtr("Confirm if relevant across all physical sites, levels, or sections.")},
			{ClassifierID: "ISO4", Code: "XX", Description: "Non-specific to physical areas", Prompt: strPtr("Identify terms showing no specific physical location or layout.")},
			{ClassifierID: "ISO4", Code: "SP", Description: "Site Plan; layouts", Prompt: strPtr("Look for terms related to site-wide layouts, zoning, or external areas.")},
			{ClassifierID: "ISO4", Code: "FP", Description: "Floor Plan; layouts", Prompt: strPtr("Identify mentions of floor plans, interior layouts, or vertical arrangement across floors.")},
		},
	},
	{
		Classifier: model.Classifier{
			ID:          "ISO5",
			Name:        "Type",
			Prompt:      "Identify document format types like technical, financial, or contractual documents.",
			Description: "Identifies the document type or format.",
		},
		Data: []model.ClassifierData{
			{ClassifierID: "ISO5", Code: "ZZ", Description: "Applies to all document types", Prompt: strPtr("Confirm if applicable across all document formats.")},
			{ClassifierID: "ISO5", Code: "XX", Description: "Non-specific to document type", Prompt: strPtr("Identify terms showing no specific document format.")},
			{ClassifierID: "ISO5", Code: "CN", Description: "Contractual", Prompt: strPtr("Locate terms related to contracts, agreements, or legal obligations.")},
			{ClassifierID: "ISO5", Code: "FN", Description: "Financial", Prompt: strPtr("Identify references to financial data, budgets, or costings.")},
			{ClassifierID: "ISO5", Code: "TC", Description: "Technical; reports, surveys", Prompt: strPtr("Look for technical terms related to reports, surveys, or engineering.")},
			{ClassifierID: "ISO5", Code: "LG", Description: "Legal"},
		},
	},
	{
		Classifier: model.Classifier{
			ID:          "ISO6",
			Name:        "Discipline",
			Prompt:      "Identify terms related to professional disciplines, such as engineering, architecture, or geology.",
			Description: "Identifies the professional discipline associated with the document.",
		},
		Data: []model.ClassifierData{
			{ClassifierID: "ISO6", Code: "ZZ", Description: "All disciplines", Prompt: strPtr("Confirm if relevant across all professional disciplines.")},
			{ClassifierID: "ISO6", Code: "XX", Description: "Non-specific to discipline", Prompt: strPtr("Identify terms showing no specific professional discipline.")},
			{ClassifierID: "ISO6", Code: "GE", Description: "Geology, geotechnical", Prompt: strPtr("Locate terms related to geological surveys, geotechnical engineering, or soil analysis.")},
			{ClassifierID: "ISO6", Code: "CV", Description: "Civil"},
			{ClassifierID: "ISO6", Code: "AR", Description: "Architecture"},
		},
	},
}

var seedEnrichers = []model.Enricher{
	{Name: "Client", SearchTerm: "client", Body: "Extract name(s) of client(s) mentioned in the document.", Active: true},
	{Name: "Client Contact", SearchTerm: "client contact", Body: "Extract details of any client contacts mentioned in the document, including names, roles, or contact details.", Active: true},
	{Name: "Contractor", SearchTerm: "contractor", Body: "Extract name(s) of contractor(s) mentioned in the document.", Active: true},
	{Name: "Contractor Contact", SearchTerm: "contractor contact", Body: "Extract details of any contractor contacts mentioned in the document, including names, roles, or contact details.", Active: true},
	{Name: "Date", SearchTerm: "date", Body: "Extract all mentioned dates, including contextual information where available.", Active: true},
	{Name: "Address", SearchTerm: "address", Body: "Extract all addresses mentioned, including full addresses and any broken-down components like city or postcode.", Active: true},
	{Name: "BGS", SearchTerm: "BGS ID", Body: "Extract British Geological Survey (BGS) identifiers, references, or borehole codes.", Active: true},
}

var seedBGSClassifications = []model.BGSClassification{
	{
		DocumentID:  "01FCBACZIFWRL22JSIMJAYZJ5UAYIDY36K",
		Code:        "426100",
		Explanation: "Borehole record identifier assigned by British Geological Survey",
		Tooltip:     "BGS ID: 426100, SU72SW51, Petersfield",
		AppliedAt:   "2024-12-17T10:32:00Z",
	},
	{
		DocumentID:  "01FCBACZSU72SW59",
		Code:        "12709323",
		Explanation: "Borehole record identifier assigned by British Geological Survey",
		Tooltip:     "BGS ID: 12709323, SU72SW59, Petersfield",
		AppliedAt:   "2024-12-17T10:32:00Z",
	},
	{
		DocumentID:  "01FCBACZSU72SE15",
		Code:        "426030",
		Explanation: "Borehole record identifier assigned by British Geological Survey",
		Tooltip:     "BGS ID: 426030, SU72SE15, Petersfield",
		AppliedAt:   "2024-12-17T10:32:00Z",
	},
	{
		DocumentID:  "01FCBACZSU72SW60",
		Code:        "15952134",
		Explanation: "Borehole record identifier assigned by British Geological Survey",
		Tooltip:     "BGS ID: 15952134, SU72SW60, Petersfield",
		AppliedAt:   "2024-12-17T10:32:00Z",
	},
}

func userEdit(documentID, field, edited string) model.UserEdit {
	return model.UserEdit{
		DocumentID:    documentID,
		Field:         field,
		OriginalValue: "unknown",
		EditedValue:   edited,
		EditedBy:      seedUser.ID,
		EditedAt:      "2024-12-17T10:33:00Z",
	}
}

var seedUserEdits = []model.UserEdit{
	userEdit("01FCBACZSU72SW59", "ISO2", "BGS"),
	userEdit("01FCBACZSU72SE15", "ISO2", "BGS"),
	userEdit("01FCBACZSU72SE15", "ISO4", "SP"),
	userEdit("01FCBACZSU72SW60", "ISO2", "BGS"),
	userEdit("01FCBACZSU72SW60", "ISO4", "SP"),
}
