package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusInProgress RequestStatus = "inprogress"
	RequestStatusDone       RequestStatus = "done"
	RequestStatusCanceled   RequestStatus = "canceled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusInProgress, RequestStatusDone, RequestStatusCanceled:
		return true
	}
	return false
}

// DonationRequest is a plea for blood at a given place and time. The donor
// sub-record is only meaningful once the status has left pending.
type DonationRequest struct {
	ID                int64         `json:"id"`
	RequesterEmail    string        `json:"requesterEmail"`
	RequesterName     string        `json:"requesterName"`
	RecipientName     string        `json:"recipientName"`
	RecipientDistrict string        `json:"recipientDistrict"`
	RecipientUpazila  string        `json:"recipientUpazila"`
	HospitalName      string        `json:"hospitalName"`
	FullAddress       string        `json:"fullAddress"`
	BloodGroup        string        `json:"bloodGroup"`
	DonationDate      string        `json:"donationDate"`
	DonationTime      string        `json:"donationTime"`
	RequestMessage    string        `json:"requestMessage"`
	Status            RequestStatus `json:"status"`
	DonorName         *string       `json:"donorName,omitempty"`
	DonorEmail        *string       `json:"donorEmail,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
}

// RequestPatch is a moderator/owner edit. A nil field is left untouched.
type RequestPatch struct {
	RecipientName     *string        `json:"recipientName"`
	RecipientDistrict *string        `json:"recipientDistrict"`
	RecipientUpazila  *string        `json:"recipientUpazila"`
	HospitalName      *string        `json:"hospitalName"`
	FullAddress       *string        `json:"fullAddress"`
	BloodGroup        *string        `json:"bloodGroup"`
	DonationDate      *string        `json:"donationDate"`
	DonationTime      *string        `json:"donationTime"`
	RequestMessage    *string        `json:"requestMessage"`
	Status            *RequestStatus `json:"status"`
}

func (p RequestPatch) Empty() bool {
	return p.RecipientName == nil && p.RecipientDistrict == nil && p.RecipientUpazila == nil &&
		p.HospitalName == nil && p.FullAddress == nil && p.BloodGroup == nil &&
		p.DonationDate == nil && p.DonationTime == nil && p.RequestMessage == nil && p.Status == nil
}

// RequestStats aggregates a requester's requests in one pass.
type RequestStats struct {
	PerStatus map[RequestStatus]int64 `json:"perStatus"`
	Total     int64                   `json:"total"`
}
