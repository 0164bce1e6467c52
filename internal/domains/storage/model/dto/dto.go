package dto

import (
	"mime/multipart"
)

type UploadRequest struct {
	File       *multipart.FileHeader `json:"file"      validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=10"`
	FileReader multipart.File        `json:"-"`
	Bucket     string                `json:"bucket"    validate:"required,oneof=restaurant-images menu-images user-avatars"`
	Directory  string                `json:"directory" validate:"omitempty,max=100"`
}

type UploadBase64Request struct {
	File     string `json:"file"      validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=10"`
	FileName string `json:"file_name" validate:"omitempty,max=150"`
	Bucket   string `json:"bucket"    validate:"required,oneof=restaurant-images menu-images user-avatars"`
}

type DeleteRequest struct {
	URL    string `json:"url"    validate:"required,url"`
	Bucket string `json:"bucket" validate:"required,oneof=restaurant-images menu-images user-avatars"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (u *UploadResponse) FromUpload(url, fileName string) {
	u.URL = url
	u.FileName = fileName
}
