package model

import "testing"

func TestImageRequest_Constructors(t *testing.T) {
	tests := []struct {
		name     string
		request  ImageRequest
		kind     RequestKind
		value    string
		isRemote bool
	}{
		{"url", URLRequest("https://example.com/a.png"), RequestURL, "https://example.com/a.png", true},
		{"clipboard", ClipboardRequest("https://example.com/b.jpg"), RequestClipboard, "https://example.com/b.jpg", true},
		{"file", FileRequest("/tmp/c.gif"), RequestFile, "/tmp/c.gif", false},
	}

	for _, test := range tests {
		if test.request.Kind != test.kind {
			t.Errorf("%s: Kind = %s, expected %s", test.name, test.request.Kind, test.kind)
		}
		if test.request.Value != test.value {
			t.Errorf("%s: Value = %s, expected %s", test.name, test.request.Value, test.value)
		}
		if test.request.IsRemote() != test.isRemote {
			t.Errorf("%s: IsRemote() = %v, expected %v", test.name, test.request.IsRemote(), test.isRemote)
		}
	}
}

func TestLoadTask_GetDisplaySource(t *testing.T) {
	tests := []struct {
		name     string
		task     LoadTask
		expected string
	}{
		{"url kept whole", LoadTask{Request: URLRequest("https://example.com/pic.png")}, "https://example.com/pic.png"},
		{"unix path trimmed", LoadTask{Request: FileRequest("/home/user/pics/cat.jpg")}, "cat.jpg"},
		{"windows path trimmed", LoadTask{Request: FileRequest(`C:\pics\dog.png`)}, "dog.png"},
	}

	for _, test := range tests {
		result := test.task.GetDisplaySource()
		if result != test.expected {
			t.Errorf("%s: GetDisplaySource() = %s, expected %s", test.name, result, test.expected)
		}
	}
}

func TestLoadTask_GetDimensionsString(t *testing.T) {
	task := &LoadTask{}
	if task.GetDimensionsString() != "—" {
		t.Errorf("expected placeholder before decode, got %s", task.GetDimensionsString())
	}

	task.Width = 800
	task.Height = 600
	if task.GetDimensionsString() != "800x600" {
		t.Errorf("GetDimensionsString() = %s, expected 800x600", task.GetDimensionsString())
	}
}
