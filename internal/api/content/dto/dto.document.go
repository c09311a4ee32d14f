package dto

// DocumentCreateInput is the body of POST /api/documents.
type DocumentCreateInput struct {
	Title       string `json:"title" bson:"title" validate:"required,max=200,no_xss"`
	FileUrl     string `json:"fileUrl" bson:"fileUrl" validate:"required,url,max=500"`
	FileType    string `json:"fileType" bson:"fileType,omitempty" validate:"omitempty,max=30"`
	Category    string `json:"category" bson:"category,omitempty" validate:"omitempty,max=50,no_xss"`
	Description string `json:"description" bson:"description,omitempty" validate:"omitempty,max=1000,no_xss"`
	SizeBytes   int64  `json:"sizeBytes" bson:"sizeBytes,omitempty" validate:"omitempty,gte=0"`
	IsPublic    *bool  `json:"isPublic" bson:"isPublic,omitempty"`
}

// DocumentUpdateInput is the body of PUT /api/documents/:id.
type DocumentUpdateInput struct {
	Title       string `json:"title" bson:"title,omitempty" validate:"omitempty,max=200,no_xss"`
	FileUrl     string `json:"fileUrl" bson:"fileUrl,omitempty" validate:"omitempty,url,max=500"`
	FileType    string `json:"fileType" bson:"fileType,omitempty" validate:"omitempty,max=30"`
	Category    string `json:"category" bson:"category,omitempty" validate:"omitempty,max=50,no_xss"`
	Description string `json:"description" bson:"description,omitempty" validate:"omitempty,max=1000,no_xss"`
	SizeBytes   *int64 `json:"sizeBytes" bson:"sizeBytes,omitempty" validate:"omitempty"`
	IsPublic    *bool  `json:"isPublic" bson:"isPublic,omitempty"`
}
