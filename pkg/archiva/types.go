package archiva

import "encoding/xml"

// loginRequest is the XML payload of the redback logIn call.
type loginRequest struct {
	XMLName  xml.Name `xml:"loginRequest"`
	Username string   `xml:"username"`
	Password string   `xml:"password"`
}

// VersionsList is the browseService/versionsList response shape.
type VersionsList struct {
	Versions []string `json:"versions"`
}

// DownloadInfo is one record of the artifactDownloadInfos response.
// Id doubles as the artifact filename; Url is an absolute download
// URL on the same instance.
type DownloadInfo struct {
	GroupId       string `json:"groupId"`
	ArtifactId    string `json:"artifactId"`
	Id            string `json:"id"`
	Version       string `json:"version"`
	Classifier    string `json:"classifier,omitempty"`
	Packaging     string `json:"packaging,omitempty"`
	FileExtension string `json:"fileExtension,omitempty"`
	Size          string `json:"size,omitempty"`
	RepositoryId  string `json:"repositoryId,omitempty"`
	Context       string `json:"context,omitempty"`
	Path          string `json:"path,omitempty"`
	Url           string `json:"url"`
}
