package infra

import "travel-booking/internal/domain/booking"

// Package type columns store '' for rows that apply to every package.

func PackageTypeFromColumn(s string) (*booking.PackageType, error) {
	if s == "" {
		return nil, nil
	}
	pt, err := booking.NewPackageType(s)
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

func PackageTypeToColumn(pt *booking.PackageType) string {
	if pt == nil {
		return ""
	}
	return pt.String()
}
